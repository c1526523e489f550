// services/menu_service.go
package services

import (
	"errors"

	"campuseats/entity"
	"campuseats/pkg/apperr"
	"campuseats/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo       *repository.MenuRepository
	VendorRepo *repository.VendorRepository
}

func NewMenuService(repo *repository.MenuRepository, vendorRepo *repository.VendorRepository) *MenuService {
	return &MenuService{Repo: repo, VendorRepo: vendorRepo}
}

func (s *MenuService) ListByVendor(vendorID uint) ([]entity.MenuItem, error) {
	return s.Repo.FindByVendor(vendorID)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	return m, nil
}

// ----- Vendor management (ต้องเป็นเจ้าของร้าน) -----

func (s *MenuService) Create(userID uint, item *entity.MenuItem) error {
	vendor, err := s.ownVendor(userID)
	if err != nil {
		return err
	}
	item.VendorID = vendor.ID
	return s.Repo.Create(item)
}

func (s *MenuService) Update(userID uint, item *entity.MenuItem) error {
	if err := s.mustOwn(userID, item.ID); err != nil {
		return err
	}
	return s.Repo.Update(item)
}

func (s *MenuService) Delete(userID, id uint) error {
	if err := s.mustOwn(userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *MenuService) SetAvailability(userID, id uint, available bool) error {
	if err := s.mustOwn(userID, id); err != nil {
		return err
	}
	return s.Repo.SetAvailability(id, available)
}

func (s *MenuService) ListOwn(userID uint) ([]entity.MenuItem, error) {
	vendor, err := s.ownVendor(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByVendor(vendor.ID)
}

func (s *MenuService) ownVendor(userID uint) (*entity.Vendor, error) {
	vendor, err := s.VendorRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("no vendor registered for this account")
		}
		return nil, err
	}
	return vendor, nil
}

func (s *MenuService) mustOwn(userID, menuItemID uint) error {
	vendor, err := s.ownVendor(userID)
	if err != nil {
		return err
	}
	m, err := s.Repo.GetBasics(menuItemID)
	if err != nil {
		return apperr.NotFound("menu item not found")
	}
	if m.VendorID != vendor.ID {
		return apperr.Forbidden("menu item belongs to another vendor")
	}
	return nil
}

package services

import (
	"campuseats/entity"
	"campuseats/pkg/apperr"
	"campuseats/repository"
)

type FavoriteService struct {
	Repo     *repository.FavoriteRepository
	MenuRepo *repository.MenuRepository
}

func NewFavoriteService(repo *repository.FavoriteRepository, menuRepo *repository.MenuRepository) *FavoriteService {
	return &FavoriteService{Repo: repo, MenuRepo: menuRepo}
}

func (s *FavoriteService) List(userID uint) ([]entity.Favorite, error) {
	return s.Repo.ListForUser(userID)
}

func (s *FavoriteService) Toggle(userID, menuItemID uint) (bool, error) {
	if _, err := s.MenuRepo.GetBasics(menuItemID); err != nil {
		return false, apperr.NotFound("menu item not found")
	}
	return s.Repo.Toggle(userID, menuItemID)
}

package controllers

import (
	"errors"

	"campuseats/entity"
	"campuseats/pkg/resp"
	"campuseats/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB        *gorm.DB
	Analytics *services.AnalyticsService
}

func NewAdminController(db *gorm.DB, analytics *services.AnalyticsService) *AdminController {
	return &AdminController{DB: db, Analytics: analytics}
}

// GET /admin/dashboard
func (ctl *AdminController) Dashboard(c *gin.Context) {
	out, err := ctl.Analytics.AdminDashboardStats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type CreateVendorReq struct {
	OwnerEmail  string `json:"ownerEmail" binding:"required,email"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// POST /admin/vendors → ตั้งร้านให้ user ที่มีอยู่ และ promote เป็น vendor
func (ctl *AdminController) CreateVendor(c *gin.Context) {
	var req CreateVendorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var owner entity.User
	if err := ctl.DB.Where("email = ?", req.OwnerEmail).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "owner account not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	// หนึ่ง user เปิดได้ร้านเดียว
	var cnt int64
	ctl.DB.Model(&entity.Vendor{}).Where("user_id = ?", owner.ID).Count(&cnt)
	if cnt > 0 {
		resp.BadRequest(c, "user already owns a vendor")
		return
	}

	vendor := entity.Vendor{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		UserID:      owner.ID,
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vendor).Error; err != nil {
			return err
		}
		return tx.Model(&entity.User{}).Where("id = ?", owner.ID).
			Update("role", entity.RoleVendor).Error
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, vendor)
}

package controllers

import (
	"strconv"

	"campuseats/pkg/resp"
	"campuseats/repository"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	Repo      *repository.VendorRepository
	Menu      *services.MenuService
	Analytics *services.AnalyticsService
}

func NewVendorController(repo *repository.VendorRepository, menu *services.MenuService, analytics *services.AnalyticsService) *VendorController {
	return &VendorController{Repo: repo, Menu: menu, Analytics: analytics}
}

// GET /vendors (public)
func (ctl *VendorController) List(c *gin.Context) {
	vendors, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": vendors})
}

// GET /vendors/:id (public)
func (ctl *VendorController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	vendor, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "vendor not found")
		return
	}
	resp.OK(c, vendor)
}

// GET /vendors/:id/menu (public)
func (ctl *VendorController) Menus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	items, err := ctl.Menu.ListByVendor(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu-items/:id (public)
func (ctl *VendorController) MenuItemDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := ctl.Menu.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /vendor/dashboard
func (ctl *VendorController) Dashboard(c *gin.Context) {
	out, err := ctl.Analytics.VendorDashboard(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

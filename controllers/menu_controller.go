package controllers

import (
	"strconv"

	"campuseats/entity"
	"campuseats/pkg/resp"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Service *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

type MenuInstructionIn struct {
	Name          string `json:"name" binding:"required"`
	PriceModifier int64  `json:"priceModifier"`
	Category      string `json:"category"`
}
type MenuItemIn struct {
	Name         string              `json:"name" binding:"required"`
	Description  string              `json:"description"`
	Price        int64               `json:"price" binding:"required,min=1"`
	Category     string              `json:"category"`
	Picture      string              `json:"picture"`
	IsAvailable  *bool               `json:"isAvailable"`
	Instructions []MenuInstructionIn `json:"instructions"`
}

// GET /vendor/menu
func (ctl *MenuController) ListOwn(c *gin.Context) {
	items, err := ctl.Service.ListOwn(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /vendor/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Picture:     req.Picture,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	for _, ins := range req.Instructions {
		item.Instructions = append(item.Instructions, entity.MenuInstruction{
			Name: ins.Name, PriceModifier: ins.PriceModifier, Category: ins.Category,
		})
	}

	if err := ctl.Service.Create(utils.CurrentUserID(c), &item); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /vendor/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Price       *int64  `json:"price"`
		Category    *string `json:"category"`
		Picture     *string `json:"picture"`
		IsAvailable *bool   `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			resp.BadRequest(c, "price must be positive")
			return
		}
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Picture != nil {
		item.Picture = *req.Picture
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := ctl.Service.Update(utils.CurrentUserID(c), item); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /vendor/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// PATCH /vendor/menu/:id/availability
func (ctl *MenuController) SetAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.SetAvailability(utils.CurrentUserID(c), uint(id), *req.IsAvailable); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"isAvailable": *req.IsAvailable})
}

package controllers

import (
	"strconv"

	"campuseats/pkg/resp"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct{ Service *services.FavoriteService }

func NewFavoriteController(s *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Service: s}
}

// GET /favorites
func (ctl *FavoriteController) List(c *gin.Context) {
	items, err := ctl.Service.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /favorites/:menuItemId → toggle
func (ctl *FavoriteController) Toggle(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menuItemId"))
	fav, err := ctl.Service.Toggle(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"favorited": fav})
}

package controllers

import (
	"strconv"

	"campuseats/pkg/resp"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Service *services.CartService
	Orders  *services.OrderService
}

func NewCartController(s *services.CartService, orders *services.OrderService) *CartController {
	return &CartController{Service: s, Orders: orders}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	cart, subtotal, err := ctl.Service.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (ctl *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.Add(utils.CurrentUserID(c), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"added": true})
}

// PATCH /cart/items/:id
func (ctl *CartController) UpdateQty(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.UpdateQty(utils.CurrentUserID(c), uint(id), req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items/:id
func (ctl *CartController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.RemoveItem(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.Service.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// POST /cart/checkout
func (ctl *CartController) Checkout(c *gin.Context) {
	var req services.CheckoutFromCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Orders.CreateFromCart(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

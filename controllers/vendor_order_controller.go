// controllers/vendor_order_controller.go
package controllers

import (
	"strconv"

	"campuseats/entity"
	"campuseats/pkg/resp"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type VendorOrderController struct{ Service *services.OrderService }

func NewVendorOrderController(s *services.OrderService) *VendorOrderController {
	return &VendorOrderController{Service: s}
}

// GET /vendor/orders?status=&page=&limit=
func (ctl *VendorOrderController) List(c *gin.Context) {
	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		if !st.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		status = &st
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := ctl.Service.ListForVendorUser(utils.CurrentUserID(c), status, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /vendor/orders/:id
func (ctl *VendorOrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := ctl.Service.DetailForVendorUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /vendor/orders/:id/status
// body: {status, rejectionReason?, rejectedItems?}
// มี rejectedItems → partial rejection, ไม่มี → เดิน state graph ตาม status
func (ctl *VendorOrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.StatusUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Status == "" && len(req.RejectedItems) == 0 {
		resp.BadRequest(c, "status or rejectedItems is required")
		return
	}

	order, err := ctl.Service.VendorUpdateStatus(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

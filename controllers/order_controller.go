package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nishan023/rms-test-sub000/pkg/resp"
	"github.com/nishan023/rms-test-sub000/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /orders — QR menu clients place or extend a table's order
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	detail, err := oc.Service.CreateOrAppendOrder(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, detail)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := oc.Service.Detail(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /admin/orders — the kitchen/admin live board
func (oc *OrderController) ListActive(c *gin.Context) {
	items, err := oc.Service.ListActive()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type updateQuantityReq struct {
	Action string `json:"action" binding:"required,oneof=increment decrement"`
}

// PATCH /admin/orders/:id/items/:menuItemId
func (oc *OrderController) UpdateQuantity(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	menuItemID, err := pathID(c, "menuItemId")
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var req updateQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	detail, err := oc.Service.UpdateItemQuantity(orderID, menuItemID, req.Action)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

type reduceItemReq struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// POST /admin/orders/:id/items/:menuItemId/reduce
func (oc *OrderController) ReduceItem(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	menuItemID, err := pathID(c, "menuItemId")
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var req reduceItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	detail, err := oc.Service.ReduceItem(orderID, menuItemID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// DELETE /admin/orders/:id/items/:menuItemId
func (oc *OrderController) CancelItem(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	menuItemID, err := pathID(c, "menuItemId")
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	detail, err := oc.Service.CancelItem(orderID, menuItemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /admin/orders/:id/cancel
func (oc *OrderController) CancelOrder(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := oc.Service.CancelOrder(orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=preparing served"`
}

// PATCH /admin/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	detail, err := oc.Service.UpdateStatus(orderID, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}

package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nishan023/rms-test-sub000/pkg/resp"
	"github.com/nishan023/rms-test-sub000/services"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

type cashPaymentReq struct {
	Discount   *services.Discount `json:"discount"`
	CashAmount float64            `json:"cashAmount" binding:"required,gt=0"`
}

// POST /admin/orders/:id/pay/cash
func (pc *PaymentController) PayCash(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req cashPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	change, bill, err := pc.Service.ProcessCashPayment(orderID, req.Discount, req.CashAmount)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"change": change, "bill": bill})
}

type onlinePaymentReq struct {
	Discount *services.Discount `json:"discount"`
}

// POST /admin/orders/:id/pay/online
func (pc *PaymentController) PayOnline(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req onlinePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	bill, err := pc.Service.ProcessOnlinePayment(orderID, req.Discount)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"bill": bill})
}

type mixedPaymentReq struct {
	Discount     *services.Discount `json:"discount"`
	CashAmount   float64            `json:"cashAmount" binding:"min=0"`
	OnlineAmount float64            `json:"onlineAmount" binding:"min=0"`
}

// POST /admin/orders/:id/pay/mixed
func (pc *PaymentController) PayMixed(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req mixedPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	bill, err := pc.Service.ProcessMixedPayment(orderID, req.Discount, req.CashAmount, req.OnlineAmount)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"bill": bill})
}

type creditPaymentReq struct {
	CustomerPhone string `json:"customerPhone" binding:"required"`
}

// POST /admin/orders/:id/pay/credit
func (pc *PaymentController) PayCredit(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req creditPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	bill, err := pc.Service.ProcessCreditPayment(orderID, req.CustomerPhone)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"bill": bill})
}

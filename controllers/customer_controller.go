package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nishan023/rms-test-sub000/pkg/resp"
	"github.com/nishan023/rms-test-sub000/services"
)

type CustomerController struct {
	Service *services.CreditService
}

func NewCustomerController(svc *services.CreditService) *CustomerController {
	return &CustomerController{Service: svc}
}

type createAccountReq struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// POST /admin/customers
func (cc *CustomerController) Create(c *gin.Context) {
	var req createAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cust, err := cc.Service.CreateAccount(req.FullName, req.PhoneNumber)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cust)
}

// GET /admin/customers
func (cc *CustomerController) List(c *gin.Context) {
	items, err := cc.Service.ListAccounts()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/customers/:id
func (cc *CustomerController) Detail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid customer id")
		return
	}

	details, err := cc.Service.GetAccountDetails(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, details)
}

type ledgerEntryReq struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Method      string  `json:"method" binding:"omitempty,oneof=CASH ONLINE"`
	Description string  `json:"description"`
}

// POST /admin/customers/:id/charges — manual debt entry
func (cc *CustomerController) RecordCharge(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid customer id")
		return
	}

	var req ledgerEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := cc.Service.RecordCharge(id, req.Amount, req.Description)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /admin/customers/:id/payments — debt settlement
func (cc *CustomerController) RecordPayment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid customer id")
		return
	}

	var req ledgerEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := cc.Service.RecordPayment(id, req.Amount, req.Method, req.Description)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// DELETE /admin/customers/:id
func (cc *CustomerController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid customer id")
		return
	}

	if err := cc.Service.DeleteAccount(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

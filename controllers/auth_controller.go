package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nishan023/rms-test-sub000/pkg/resp"
	"github.com/nishan023/rms-test-sub000/services"
	"github.com/nishan023/rms-test-sub000/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	resp.OK(c, gin.H{"userId": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
}

type createStaffReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin staff"`
}

// POST /admin/staff (admin only)
func (ac *AuthController) CreateStaff(c *gin.Context) {
	var req createStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Service.CreateStaff(req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nishan023/rms-test-sub000/pkg/resp"
	"github.com/nishan023/rms-test-sub000/repository"
)

// MenuController only serves the read side; menu management is out of scope.
type MenuController struct {
	Repo *repository.MenuRepository
}

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /menu — what QR ordering clients browse
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Repo.ListAvailable()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

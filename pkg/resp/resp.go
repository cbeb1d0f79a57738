package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishan023/rms-test-sub000/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps service errors to HTTP statuses by apperr kind. Anything without
// a kind is a server error.
func Error(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case apperr.KindInvalidState:
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	default:
		ServerError(c, err)
	}
}

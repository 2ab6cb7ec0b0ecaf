package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moyan78641/memoria/internal/service"
)

// AuthHandler serves setup, login and password management.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Status(c *gin.Context) {
	initialized, siteName, err := h.auth.Status(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"initialized": initialized, "site_name": siteName})
}

func (h *AuthHandler) Setup(c *gin.Context) {
	var body struct {
		Password string `json:"password"`
		SiteName string `json:"site_name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	token, err := h.auth.Setup(c.Request.Context(), body.Password, body.SiteName)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyInitialized) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), body.Password)
	switch {
	case errors.Is(err, service.ErrNotInitialized):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case err != nil:
		fail(c, err, "")
	default:
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var body struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	token, err := h.auth.ChangePassword(c.Request.Context(), body.OldPassword, body.NewPassword)
	switch {
	case errors.Is(err, service.ErrNotInitialized):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "旧密码错误"})
	case err != nil:
		fail(c, err, "")
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
	}
}

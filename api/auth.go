package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/Domenick1991/skyfare/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service   auth.AuthUseCase
	cookieTTL int
}

func NewAuthHandler(service auth.AuthUseCase, cookieTTLSeconds int) *AuthHandler {
	return &AuthHandler{service: service, cookieTTL: cookieTTLSeconds}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/signup", h.signup)
	router.POST("/signin", h.signin)
}

type authResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *AuthHandler) signup(c *gin.Context) {
	var req auth.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.setSession(c, token)
	c.JSON(http.StatusCreated, authResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: string(user.Role)})
}

func (h *AuthHandler) signin(c *gin.Context) {
	var req auth.SigninInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.service.Signin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.setSession(c, token)
	c.JSON(http.StatusOK, authResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: string(user.Role)})
}

func (h *AuthHandler) setSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, token, h.cookieTTL, "/", "", false, true)
}

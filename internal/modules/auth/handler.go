package auth

import (
	"net/http"

	"hotelms/internal/domain"
	"hotelms/internal/pkg/response"
	"hotelms/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/auth/me", h.Me)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/users/:username/deactivate", h.Deactivate)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
		case ErrAccountLocked:
			response.Error(c, http.StatusLocked, "ACCOUNT_LOCKED", "Too many failed attempts, try again later")
		case ErrAccountDisabled:
			response.Error(c, http.StatusForbidden, "ACCOUNT_DISABLED", "Account has been deactivated")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":         result.User,
		"access_token": result.AccessToken,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	if err := h.service.Logout(c.Request.Context(), tokenID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log out")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.CurrentUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if err == ErrUserNotFound {
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	actor := domain.UserRole(c.GetString("role"))
	user, err := h.service.Register(c.Request.Context(), actor, req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid username, password or role")
		case ErrDuplicateIdentifier:
			response.Error(c, http.StatusConflict, "DUPLICATE_IDENTIFIER", "Username is already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Deactivate(c *gin.Context) {
	actor := domain.UserRole(c.GetString("role"))
	err := h.service.Deactivate(c.Request.Context(), actor, c.Param("username"))
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to deactivate user")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

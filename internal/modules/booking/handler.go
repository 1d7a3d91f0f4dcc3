package booking

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Reserve)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:reference", h.Get)
	rg.POST("/bookings/:reference/check-in", h.CheckIn)
	rg.POST("/bookings/:reference/check-out", h.CheckOut)
	rg.POST("/bookings/:reference/cancel", h.Cancel)
}

func (h *Handler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	b, err := h.service.Reserve(c.Request.Context(), actorRole(c), req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid guest or date range")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		case ErrRoomUnavailable:
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) CheckIn(c *gin.Context) {
	b, err := h.service.CheckIn(c.Request.Context(), actorRole(c), c.Param("reference"))
	if err != nil {
		h.transitionError(c, err, "Failed to check in")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CheckOut(c *gin.Context) {
	b, bill, err := h.service.CheckOut(c.Request.Context(), actorRole(c), c.Param("reference"))
	if err != nil {
		h.transitionError(c, err, "Failed to check out")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b, "bill": bill})
}

func (h *Handler) Cancel(c *gin.Context) {
	b, err := h.service.Cancel(c.Request.Context(), actorRole(c), c.Param("reference"))
	if err != nil {
		h.transitionError(c, err, "Failed to cancel")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if err == ErrBookingNotFound {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// List returns active bookings, or a room's full history with ?room=.
func (h *Handler) List(c *gin.Context) {
	var (
		bookings []domain.Booking
		err      error
	)
	if room := c.Query("room"); room != "" {
		bookings, err = h.service.ListByRoom(c.Request.Context(), room)
	} else {
		bookings, err = h.service.ListActive(c.Request.Context())
	}
	if err != nil {
		if err == ErrRoomNotFound {
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) transitionError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking is not in a state that allows this operation")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func actorRole(c *gin.Context) domain.UserRole {
	return domain.UserRole(c.GetString("role"))
}

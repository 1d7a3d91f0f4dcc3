package inventory

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

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/:number", h.GetRoom)
	rg.GET("/vacancies", h.Vacancies)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.AddRoom)
	rg.PATCH("/rooms/:number/status", h.SetStatus)
}

func (h *Handler) AddRoom(c *gin.Context) {
	var req AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	room, err := h.service.AddRoom(c.Request.Context(), domain.UserRole(c.GetString("role")), req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room number, type or rate")
		case ErrDuplicateRoom:
			response.Error(c, http.StatusConflict, "DUPLICATE_ROOM", "Room number already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add room")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	room, err := h.service.SetStatus(
		c.Request.Context(),
		domain.UserRole(c.GetString("role")),
		c.Param("number"),
		domain.RoomStatus(req.Status),
	)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown room status")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		case ErrRoomOccupied:
			response.Error(c, http.StatusConflict, "ROOM_OCCUPIED", "Room has a checked-in guest")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.service.GetRoom(c.Request.Context(), c.Param("number"))
	if err != nil {
		if err == ErrRoomNotFound {
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) Vacancies(c *gin.Context) {
	roomType := domain.RoomType(c.Query("type"))

	rooms := make([]domain.Room, 0)
	for room, err := range h.service.VacantRooms(c.Request.Context(), roomType) {
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list vacancies")
			return
		}
		rooms = append(rooms, room)
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

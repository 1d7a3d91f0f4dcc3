package billing

import (
	"net/http"
	"strconv"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/:reference/bill", h.GetByBooking)
	rg.POST("/bills/:id/pay", h.MarkPaid)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/revenue", h.Revenue)
}

func (h *Handler) GetByBooking(c *gin.Context) {
	bill, err := h.service.GetByBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case ErrBillNotFound:
			response.Error(c, http.StatusNotFound, "BILL_NOT_FOUND", "No bill issued for this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bill")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bill": bill})
}

func (h *Handler) MarkPaid(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid bill id")
		return
	}

	bill, err := h.service.MarkPaid(c.Request.Context(), domain.UserRole(c.GetString("role")), id)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		case ErrBillNotFound:
			response.Error(c, http.StatusNotFound, "BILL_NOT_FOUND", "Bill not found")
		case ErrBillAlreadyPaid:
			response.Error(c, http.StatusConflict, "BILL_ALREADY_PAID", "Bill has already been paid")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark bill paid")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bill": bill})
}

func (h *Handler) Revenue(c *gin.Context) {
	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid from date")
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid to date")
		return
	}

	report, err := h.service.Revenue(c.Request.Context(), domain.UserRole(c.GetString("role")), from, to)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Report range must end after it starts")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}

package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.UseCase
}

type createBookingRequest struct {
	FlightNumber   string `json:"flight_number"`
	PassengerName  string `json:"passenger_name"`
	PassportNumber string `json:"passport_number"`
	Seat           string `json:"seat"`
}

type bookingResponse struct {
	ID             string `json:"id"`
	FlightNumber   string `json:"flight_number"`
	PassengerName  string `json:"passenger_name"`
	PassportNumber string `json:"passport_number"`
	Seat           string `json:"seat"`
	Warning        string `json:"warning,omitempty"`
}

func NewBookingHandler(service booking.UseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.Book(c.Request.Context(), booking.BookInput{
		FlightNumber:   req.FlightNumber,
		PassengerName:  req.PassengerName,
		PassportNumber: req.PassportNumber,
		Seat:           req.Seat,
	})
	if err != nil && b == nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	resp := bookingResponse{
		ID:             b.ID,
		FlightNumber:   b.FlightNumber,
		PassengerName:  b.PassengerName,
		PassportNumber: b.PassportNumber,
		Seat:           b.Seat,
	}
	// The booking exists in memory even when the storage write failed.
	if err != nil {
		resp.Warning = "booking accepted but not saved to storage"
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case errors.Is(err, domain.ErrPersistence) && ok:
			c.JSON(http.StatusOK, gin.H{"cancelled": id, "warning": "cancellation accepted but not saved to storage"})
			return
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

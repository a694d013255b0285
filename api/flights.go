package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.UseCase
}

func NewFlightHandler(service flights.UseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/origins", h.origins)
	router.GET("/destinations", h.destinations)
	router.GET("/:number", h.get)
}

// list returns the whole catalog, or the flights matching the route when the
// origin/destination query parameters are set.
func (h *FlightHandler) list(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")

	var (
		result []domain.Flight
		err    error
	)
	if origin == "" && destination == "" {
		result, err = h.service.List(c.Request.Context())
	} else {
		result, err = h.service.Search(c.Request.Context(), origin, destination)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) origins(c *gin.Context) {
	origins, err := h.service.Origins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, origins)
}

func (h *FlightHandler) destinations(c *gin.Context) {
	destinations, err := h.service.Destinations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, destinations)
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	clientRepo "wellbook/database/repository/client"
	providerRepo "wellbook/database/repository/provider"
	"wellbook/services/booking"
)

// ReservationHandler exposes the reservation service over HTTP.
type ReservationHandler struct {
	Service booking.ReservationService
	Logger  *zap.Logger
}

// NewReservationHandler builds a handler around the given service.
func NewReservationHandler(svc booking.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Service: svc, Logger: logger}
}

// SearchProviders finds all available providers for a category.
func (h *ReservationHandler) SearchProviders(c *gin.Context) {
	logger := getLogger(c)
	var input struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if body, ok := cachedSearch(c, input.Category); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	providers, err := h.Service.FindAvailableProviders(input.Category)
	if err != nil {
		if errors.Is(err, booking.ErrNoMatch) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No available providers found for category: %s", input.Category)})
			return
		}
		logger.Error("Provider search failed", zap.String("category", input.Category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search providers"})
		return
	}

	response := gin.H{
		"message":   fmt.Sprintf("Found %d available providers.", len(providers)),
		"providers": providers,
	}
	storeSearch(c, input.Category, response)
	c.JSON(http.StatusOK, response)
}

// CreateBooking reserves a slot with a specific provider for a client.
func (h *ReservationHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c)
	var input struct {
		ClientID   int `json:"client_id" binding:"required"`
		ProviderID int `json:"provider_id" binding:"required"`
		SlotID     int `json:"slot_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Service.Reserve(input.ClientID, input.ProviderID, input.SlotID)
	if err != nil {
		status, msg := reservationError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Reservation failed", zap.Int("client_id", input.ClientID),
				zap.Int("provider_id", input.ProviderID), zap.Int("slot_id", input.SlotID), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	invalidateProviderSearches(c, h.Service, bk.ProviderID)

	logger.Info("Booking confirmed",
		zap.Int64("booking_id", bk.ID),
		zap.Int("client_id", bk.ClientID),
		zap.Int("provider_id", bk.ProviderID),
		zap.Int("slot_id", bk.SlotID))
	c.JSON(http.StatusCreated, gin.H{
		"message":         "Booking confirmed!",
		"booking_details": bk,
	})
}

// ListClientBookings returns all bookings for a specific client.
func (h *ReservationHandler) ListClientBookings(c *gin.Context) {
	clientID, ok := intParam(c, "id")
	if !ok {
		return
	}

	bookings, err := h.Service.ListClientBookings(clientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		getLogger(c).Error("Listing bookings failed", zap.Int("client_id", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// reservationError maps a reservation failure onto a status code and message.
func reservationError(err error) (int, string) {
	switch {
	case errors.Is(err, clientRepo.ErrClientNotFound):
		return http.StatusNotFound, "Client not found"
	case errors.Is(err, providerRepo.ErrProviderNotFound):
		return http.StatusNotFound, "Provider not found"
	case errors.Is(err, providerRepo.ErrSlotNotFound):
		return http.StatusNotFound, "Time slot not found"
	case errors.Is(err, providerRepo.ErrSlotNotAvailable):
		return http.StatusConflict, "This time slot is already booked"
	default:
		return http.StatusInternalServerError, "Failed to create booking"
	}
}

func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s parameter", name)})
		return 0, false
	}
	return id, true
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProvidersHandler returns all providers and their full slot lists.
func (h *ReservationHandler) GetProvidersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ListProviders())
}

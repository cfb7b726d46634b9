package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
	"github.com/eventops/event_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles maintenance endpoints for the in-memory stores.
type adminHandler struct {
	adminService portssvc.AdminSvc
}

// newAdminHandler creates a new adminHandler.
func newAdminHandler(as portssvc.AdminSvc) *adminHandler {
	return &adminHandler{
		adminService: as,
	}
}

// registerAdminRoutes registers maintenance routes.
func registerAdminRoutes(rg *gin.RouterGroup, adminService portssvc.AdminSvc) {
	h := newAdminHandler(adminService)

	rg.DELETE("/reset", h.resetAll)
}

// resetAll godoc
// @Summary Reset all financial data
// @Description Clears every in-memory collection. Development use only; the data is gone for good.
// @Tags admin
// @Success 204 "All data cleared"
// @Failure 500 {object} map[string]string "Failed to reset data"
// @Router /finance/reset [delete]
func (h *adminHandler) resetAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to reset all financial data")

	if err := h.adminService.ResetAll(c.Request.Context()); err != nil {
		logger.Error("Failed to reset data in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset data"})
		return
	}

	logger.Info("All financial data cleared")
	c.Status(http.StatusNoContent)
}

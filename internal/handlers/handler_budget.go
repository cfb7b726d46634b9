package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/eventops/event_finance_app/internal/apperrors"
	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
	"github.com/eventops/event_finance_app/internal/dto"
	"github.com/eventops/event_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budget line items.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// registerBudgetRoutes registers routes related to budget line items.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	items := rg.Group("/budget-items")
	{
		items.POST("", h.createBudgetItem)
		items.GET("", h.listBudgetItems)
		items.GET("/summary/:event_id", h.getBudgetSummary)
		items.GET("/:id", h.getBudgetItem)
		items.PATCH("/:id", h.updateBudgetItem)
		items.DELETE("/:id", h.deleteBudgetItem)
	}
}

// createBudgetItem godoc
// @Summary Create a budget line item
// @Description Creates a draft budget line item; the projected amount is computed as unit cost times quantity
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateBudgetItemRequest true "Budget item details"
// @Success 201 {object} dto.BudgetItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create budget item"
// @Router /finance/budget-items [post]
func (h *budgetHandler) createBudgetItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBudgetItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create budget item", slog.String("event_id", req.EventID))

	item, err := h.budgetService.CreateBudgetItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating budget item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create budget item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget item"})
		}
		return
	}

	logger.Info("Budget item created successfully", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToBudgetItemResponse(item))
}

// listBudgetItems godoc
// @Summary List budget line items
// @Description Retrieves budget line items, optionally filtered by event, category and status
// @Tags budget
// @Produce  json
// @Param   event_id query string false "Event ID"
// @Param   category query string false "Budget category"
// @Param   status query string false "Budget status"
// @Success 200 {object} dto.ListBudgetItemsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list budget items"
// @Router /finance/budget-items [get]
func (h *budgetHandler) listBudgetItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListBudgetItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListBudgetItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	items, err := h.budgetService.ListBudgetItems(c.Request.Context(), params.ToFilter())
	if err != nil {
		logger.Error("Failed to list budget items from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budget items"})
		return
	}

	logger.Info("Budget items listed successfully", slog.Int("count", len(items)))
	c.JSON(http.StatusOK, dto.ToListBudgetItemsResponse(items))
}

// getBudgetItem godoc
// @Summary Get a budget line item
// @Description Retrieves a single budget line item by ID
// @Tags budget
// @Produce  json
// @Param   id path string true "Budget item ID"
// @Success 200 {object} dto.BudgetItemResponse
// @Failure 404 {object} map[string]string "Budget item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve budget item"
// @Router /finance/budget-items/{id} [get]
func (h *budgetHandler) getBudgetItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	logger = logger.With(slog.String("item_id", itemID))
	logger.Info("Received request to get budget item")

	item, err := h.budgetService.GetBudgetItemByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Budget item not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
		} else {
			logger.Error("Failed to get budget item from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetItemResponse(item))
}

// updateBudgetItem godoc
// @Summary Update a budget line item
// @Description Applies a partial update; the projected amount is recomputed when unit cost or quantity change
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   id path string true "Budget item ID"
// @Param   item body dto.UpdateBudgetItemRequest true "Fields to update"
// @Success 200 {object} dto.BudgetItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Budget item not found"
// @Failure 500 {object} map[string]string "Failed to update budget item"
// @Router /finance/budget-items/{id} [patch]
func (h *budgetHandler) updateBudgetItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.UpdateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBudgetItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("item_id", itemID))
	logger.Info("Received request to update budget item")

	item, err := h.budgetService.UpdateBudgetItem(c.Request.Context(), itemID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Budget item not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating budget item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update budget item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget item"})
		}
		return
	}

	logger.Info("Budget item updated successfully")
	c.JSON(http.StatusOK, dto.ToBudgetItemResponse(item))
}

// deleteBudgetItem godoc
// @Summary Delete a budget line item
// @Description Removes a budget line item permanently
// @Tags budget
// @Param   id path string true "Budget item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Budget item not found"
// @Failure 500 {object} map[string]string "Failed to delete budget item"
// @Router /finance/budget-items/{id} [delete]
func (h *budgetHandler) deleteBudgetItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	logger = logger.With(slog.String("item_id", itemID))
	logger.Info("Received request to delete budget item")

	if err := h.budgetService.DeleteBudgetItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Budget item not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
		} else {
			logger.Error("Failed to delete budget item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget item"})
		}
		return
	}

	logger.Info("Budget item deleted successfully")
	c.Status(http.StatusNoContent)
}

// getBudgetSummary godoc
// @Summary Summarize an event's budget
// @Description Aggregates the event's line items into totals, per-category breakdowns and per-status counts
// @Tags budget
// @Produce  json
// @Param   event_id path string true "Event ID"
// @Success 200 {object} dto.BudgetSummaryResponse
// @Failure 500 {object} map[string]string "Failed to summarize budget"
// @Router /finance/budget-items/summary/{event_id} [get]
func (h *budgetHandler) getBudgetSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("event_id")

	logger = logger.With(slog.String("event_id", eventID))
	logger.Info("Received request for budget summary")

	summary, err := h.budgetService.SummarizeBudget(c.Request.Context(), eventID)
	if err != nil {
		logger.Error("Failed to summarize budget in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize budget"})
		return
	}

	logger.Info("Budget summarized successfully", slog.Int("total_items", summary.TotalItems))
	c.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(eventID, summary))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/eventops/event_finance_app/internal/apperrors"
	"github.com/eventops/event_finance_app/internal/core/domain"
	portssvc "github.com/eventops/event_finance_app/internal/core/ports/services"
	"github.com/eventops/event_finance_app/internal/dto"
	"github.com/eventops/event_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sponsorshipHandler handles HTTP requests related to packages and sponsors.
type sponsorshipHandler struct {
	sponsorshipService portssvc.SponsorshipSvcFacade
}

// newSponsorshipHandler creates a new sponsorshipHandler.
func newSponsorshipHandler(ss portssvc.SponsorshipSvcFacade) *sponsorshipHandler {
	return &sponsorshipHandler{
		sponsorshipService: ss,
	}
}

// registerSponsorshipRoutes registers routes related to sponsorship packages
// and sponsors.
func registerSponsorshipRoutes(rg *gin.RouterGroup, sponsorshipService portssvc.SponsorshipSvcFacade) {
	h := newSponsorshipHandler(sponsorshipService)

	packages := rg.Group("/sponsorship-packages")
	{
		packages.POST("", h.createPackage)
		packages.GET("", h.listPackages)
	}

	sponsors := rg.Group("/sponsors")
	{
		sponsors.POST("", h.createSponsor)
		sponsors.GET("", h.listSponsors)
		sponsors.PATCH("/:id/status", h.updateSponsorStatus)
	}
}

// createPackage godoc
// @Summary Create a sponsorship package
// @Description Creates a sponsorship tier package with its bundled benefits
// @Tags sponsorship
// @Accept  json
// @Produce  json
// @Param   package body dto.CreatePackageRequest true "Package details"
// @Success 201 {object} dto.PackageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create package"
// @Router /finance/sponsorship-packages [post]
func (h *sponsorshipHandler) createPackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePackage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create sponsorship package", slog.String("event_id", req.EventID), slog.String("tier", string(req.Tier)))

	pkg, err := h.sponsorshipService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating package", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create package in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
		}
		return
	}

	logger.Info("Sponsorship package created successfully", slog.String("package_id", pkg.PackageID))
	c.JSON(http.StatusCreated, dto.ToPackageResponse(pkg))
}

// listPackages godoc
// @Summary List sponsorship packages
// @Description Retrieves sponsorship packages, optionally filtered by event
// @Tags sponsorship
// @Produce  json
// @Param   event_id query string false "Event ID"
// @Success 200 {object} dto.ListPackagesResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list packages"
// @Router /finance/sponsorship-packages [get]
func (h *sponsorshipHandler) listPackages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPackagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPackages", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	pkgs, err := h.sponsorshipService.ListPackages(c.Request.Context(), params.EventID)
	if err != nil {
		logger.Error("Failed to list packages from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list packages"})
		return
	}

	logger.Info("Packages listed successfully", slog.Int("count", len(pkgs)))
	c.JSON(http.StatusOK, dto.ToListPackagesResponse(pkgs))
}

// createSponsor godoc
// @Summary Register a sponsor
// @Description Registers a new sponsor prospect with its contact details
// @Tags sponsorship
// @Accept  json
// @Produce  json
// @Param   sponsor body dto.CreateSponsorRequest true "Sponsor details"
// @Success 201 {object} dto.SponsorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create sponsor"
// @Router /finance/sponsors [post]
func (h *sponsorshipHandler) createSponsor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSponsor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create sponsor", slog.String("company_name", req.CompanyName))

	sponsor, err := h.sponsorshipService.CreateSponsor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating sponsor", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create sponsor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sponsor"})
		}
		return
	}

	logger.Info("Sponsor created successfully", slog.String("sponsor_id", sponsor.SponsorID))
	c.JSON(http.StatusCreated, dto.ToSponsorResponse(sponsor))
}

// listSponsors godoc
// @Summary List sponsors
// @Description Retrieves sponsors, optionally filtered by status
// @Tags sponsorship
// @Produce  json
// @Param   status query string false "Sponsorship status"
// @Success 200 {object} dto.ListSponsorsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list sponsors"
// @Router /finance/sponsors [get]
func (h *sponsorshipHandler) listSponsors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSponsorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSponsors", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	sponsors, err := h.sponsorshipService.ListSponsors(c.Request.Context(), domain.SponsorshipStatus(params.Status))
	if err != nil {
		logger.Error("Failed to list sponsors from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sponsors"})
		return
	}

	logger.Info("Sponsors listed successfully", slog.Int("count", len(sponsors)))
	c.JSON(http.StatusOK, dto.ToListSponsorsResponse(sponsors))
}

// updateSponsorStatus godoc
// @Summary Update a sponsor's status
// @Description Overwrites the sponsor's pipeline status; moving to contracted stamps the contract date
// @Tags sponsorship
// @Accept  json
// @Produce  json
// @Param   id path string true "Sponsor ID"
// @Param   status body dto.UpdateSponsorStatusRequest true "New status"
// @Success 200 {object} dto.SponsorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Sponsor not found"
// @Failure 500 {object} map[string]string "Failed to update sponsor"
// @Router /finance/sponsors/{id}/status [patch]
func (h *sponsorshipHandler) updateSponsorStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sponsorID := c.Param("id")

	var req dto.UpdateSponsorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSponsorStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("sponsor_id", sponsorID))
	logger.Info("Received request to update sponsor status", slog.String("status", string(req.Status)))

	sponsor, err := h.sponsorshipService.UpdateSponsorStatus(c.Request.Context(), sponsorID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Sponsor not found for status update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Sponsor not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating sponsor status", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update sponsor status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sponsor"})
		}
		return
	}

	logger.Info("Sponsor status updated successfully", slog.String("status", string(sponsor.Status)))
	c.JSON(http.StatusOK, dto.ToSponsorResponse(sponsor))
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
)

// taxHandler handles HTTP requests related to tax configuration.
type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

func newTaxHandler(ts portssvc.TaxSvcFacade) *taxHandler {
	return &taxHandler{taxService: ts}
}

// registerTaxRoutes registers routes related to tax configuration.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := newTaxHandler(taxService)

	taxes := rg.Group("/taxes")
	{
		taxes.POST("", h.createTaxConfiguration)
		taxes.GET("", h.listTaxConfigurations)
		taxes.PUT("/:id", h.updateTaxConfiguration)
		taxes.POST("/calculate", h.calculateTaxes)
		taxes.POST("/exemptions", h.createTaxExemption)
	}
}

// createTaxConfiguration godoc
// @Summary Create a tax configuration
// @Description Adds a tax rule to the tenant's property
// @Tags taxes
// @Accept json
// @Produce json
// @Param tax body dto.CreateTaxConfigurationRequest true "Tax details"
// @Success 201 {object} dto.TaxConfigurationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /taxes [post]
func (h *taxHandler) createTaxConfiguration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTaxConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTaxConfiguration", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := h.taxService.CreateTaxConfiguration(c.Request.Context(), tc, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create tax configuration")
		return
	}

	logger.Info("Tax configuration created", slog.String("tax_id", cfg.TaxID), slog.String("code", cfg.Code))
	c.JSON(http.StatusCreated, dto.ToTaxConfigurationResponse(cfg))
}

// updateTaxConfiguration godoc
// @Summary Update a tax configuration
// @Description Changes an existing tax rule; set isActive false to retire it
// @Tags taxes
// @Accept json
// @Produce json
// @Param id path string true "Tax configuration ID"
// @Param tax body dto.UpdateTaxConfigurationRequest true "Fields to change"
// @Success 200 {object} dto.TaxConfigurationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Tax configuration not found"
// @Security BearerAuth
// @Router /taxes/{id} [put]
func (h *taxHandler) updateTaxConfiguration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateTaxConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTaxConfiguration", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := h.taxService.UpdateTaxConfiguration(c.Request.Context(), tc, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update tax configuration")
		return
	}

	logger.Info("Tax configuration updated", slog.String("tax_id", cfg.TaxID), slog.String("code", cfg.Code))
	c.JSON(http.StatusOK, dto.ToTaxConfigurationResponse(cfg))
}

// listTaxConfigurations godoc
// @Summary List tax configurations
// @Description Lists the property's tax rules ordered by calculation order
// @Tags taxes
// @Produce json
// @Param activeOnly query bool false "Restrict to active taxes"
// @Success 200 {array} dto.TaxConfigurationResponse
// @Security BearerAuth
// @Router /taxes [get]
func (h *taxHandler) listTaxConfigurations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	activeOnly := c.Query("activeOnly") == "true"
	configs, err := h.taxService.ListTaxConfigurations(c.Request.Context(), tc, activeOnly)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list tax configurations")
		return
	}

	resp := make([]dto.TaxConfigurationResponse, len(configs))
	for i := range configs {
		resp[i] = dto.ToTaxConfigurationResponse(&configs[i])
	}
	c.JSON(http.StatusOK, resp)
}

// calculateTaxes godoc
// @Summary Calculate taxes for an amount
// @Description Runs the property's tax rules against one charge amount, honoring exemptions
// @Tags taxes
// @Accept json
// @Produce json
// @Param calculation body dto.CalculateTaxesRequest true "Calculation input"
// @Success 200 {object} dto.TaxCalculationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /taxes/calculate [post]
func (h *taxHandler) calculateTaxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CalculateTaxesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	calc, err := h.taxService.CalculateTaxes(c.Request.Context(), tc, req.Amount,
		domain.ChargeType(req.ChargeType), req.CorporateAccountID, req.GuestID, time.Now())
	if err != nil {
		respondWithError(c, logger, err, "Failed to calculate taxes")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxCalculationResponse(calc))
}

// createTaxExemption godoc
// @Summary Grant a tax exemption
// @Description Grants a full or partial exemption to a corporate account or guest
// @Tags taxes
// @Accept json
// @Produce json
// @Param exemption body dto.CreateTaxExemptionRequest true "Exemption details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Tax configuration not found"
// @Security BearerAuth
// @Router /taxes/exemptions [post]
func (h *taxHandler) createTaxExemption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTaxExemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTaxExemption", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ex, err := h.taxService.CreateTaxExemption(c.Request.Context(), tc, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create tax exemption")
		return
	}

	logger.Info("Tax exemption created",
		slog.String("exemption_id", ex.ExemptionID),
		slog.String("entity_type", string(ex.EntityType)),
		slog.String("entity_id", ex.EntityID))
	c.JSON(http.StatusCreated, gin.H{"exemptionID": ex.ExemptionID})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
)

// rateHandler handles HTTP requests related to room pricing.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to room pricing.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.POST("/periods", h.createRatePeriod)
		rates.POST("/calculate", h.calculateRates)
		rates.GET("/daily", h.listDailyRates)
		rates.PUT("/daily", h.setManualRate)
	}
}

// createRatePeriod godoc
// @Summary Create a rate period
// @Description Adds a pricing rule (weekend, seasonal, event) to the property
// @Tags rates
// @Accept json
// @Produce json
// @Param period body dto.CreateRatePeriodRequest true "Rate period details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /rates/periods [post]
func (h *rateHandler) createRatePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateRatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	period, err := h.rateService.CreateRatePeriod(c.Request.Context(), tc, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create rate period")
		return
	}

	logger.Info("Rate period created", slog.String("rate_period_id", period.RatePeriodID), slog.String("name", period.Name))
	c.JSON(http.StatusCreated, gin.H{"ratePeriodID": period.RatePeriodID})
}

// calculateRates godoc
// @Summary Materialize daily rates
// @Description Resolves and stores daily rates for a date range; manual overrides are never replaced
// @Tags rates
// @Accept json
// @Produce json
// @Param calculation body dto.CalculateRatesRequest true "Date range and optional room type"
// @Success 200 {object} dto.CalculateRatesResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /rates/calculate [post]
func (h *rateHandler) calculateRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CalculateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	written, err := h.rateService.CalculateRatesForPeriod(c.Request.Context(), tc, req.RoomTypeID, req.StartDate, req.EndDate)
	if err != nil {
		respondWithError(c, logger, err, "Failed to calculate rates")
		return
	}

	logger.Info("Daily rates materialized", slog.Int("rates_written", written))
	c.JSON(http.StatusOK, dto.CalculateRatesResponse{RatesWritten: written})
}

// listDailyRates godoc
// @Summary List daily rates
// @Description Reads materialized daily rates for a room type and date range
// @Tags rates
// @Produce json
// @Param roomTypeID query string true "Room type ID"
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.DailyRateResponse
// @Security BearerAuth
// @Router /rates/daily [get]
func (h *rateHandler) listDailyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListDailyRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rates, err := h.rateService.ListDailyRates(c.Request.Context(), tc, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list daily rates")
		return
	}

	resp := make([]dto.DailyRateResponse, len(rates))
	for i := range rates {
		resp[i] = dto.ToDailyRateResponse(&rates[i])
	}
	c.JSON(http.StatusOK, resp)
}

// setManualRate godoc
// @Summary Set a manual daily rate
// @Description Writes a per-day rate override that recalculation will not touch
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.SetManualRateRequest true "Manual rate details"
// @Success 204 "No content"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /rates/daily [put]
func (h *rateHandler) setManualRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SetManualRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.rateService.SetManualRate(c.Request.Context(), tc, req); err != nil {
		respondWithError(c, logger, err, "Failed to set manual rate")
		return
	}

	logger.Info("Manual rate set",
		slog.String("room_type_id", req.RoomTypeID),
		slog.String("date", req.Date.Format("2006-01-02")))
	c.Status(http.StatusNoContent)
}

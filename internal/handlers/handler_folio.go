package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
	"github.com/stayfolio/hotel_pms_app/internal/dto"
	"github.com/stayfolio/hotel_pms_app/internal/middleware"
)

// folioHandler handles HTTP requests related to guest folios.
type folioHandler struct {
	folioService portssvc.FolioSvcFacade
}

// newFolioHandler creates a new folioHandler.
func newFolioHandler(fs portssvc.FolioSvcFacade) *folioHandler {
	return &folioHandler{folioService: fs}
}

// RegisterFolioRoutes registers routes related to folios.
func RegisterFolioRoutes(rg *gin.RouterGroup, folioService portssvc.FolioSvcFacade) {
	h := newFolioHandler(folioService)

	folios := rg.Group("/folios")
	{
		folios.POST("", h.createFolio)
		folios.POST("/check-in", h.checkIn)
		folios.GET("", h.listFolios)
		folios.GET("/:id", h.getFolio)
		folios.GET("/:id/invoice", h.getInvoice)
		folios.POST("/:id/charges", h.addCharge)
		folios.POST("/:id/adjustments", h.addAdjustment)
		folios.POST("/:id/payments", h.recordPayment)
		folios.POST("/:id/items/:itemID/void", h.voidItem)
		folios.POST("/:id/items/:itemID/transfer", h.transferItem)
		folios.POST("/:id/payments/:paymentID/void", h.voidPayment)
		folios.POST("/:id/split", h.splitFolio)
		folios.POST("/:id/close", h.closeFolio)
		folios.POST("/:id/reopen", h.reopenFolio)
	}
}

// createFolio godoc
// @Summary Open a new folio
// @Description Opens an empty folio for a guest at the tenant's property
// @Tags folios
// @Accept json
// @Produce json
// @Param folio body dto.CreateFolioRequest true "Folio details"
// @Success 201 {object} dto.FolioResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /folios [post]
func (h *folioHandler) createFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFolio", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	folio, err := h.folioService.CreateFolio(c.Request.Context(), tc, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create folio")
		return
	}

	logger.Info("Folio created", slog.String("folio_id", folio.FolioID), slog.String("guest_id", folio.GuestID))
	c.JSON(http.StatusCreated, dto.ToFolioResponse(folio))
}

// checkIn godoc
// @Summary Check a guest in
// @Description Opens a folio and posts the stay's nightly room charges in one step
// @Tags folios
// @Accept json
// @Produce json
// @Param checkIn body dto.CheckInRequest true "Check-in details"
// @Success 201 {object} dto.FolioResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Room type not found"
// @Security BearerAuth
// @Router /folios/check-in [post]
func (h *folioHandler) checkIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckIn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	folio, err := h.folioService.CheckIn(c.Request.Context(), tc, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to check in")
		return
	}

	logger.Info("Guest checked in",
		slog.String("folio_id", folio.FolioID),
		slog.String("guest_id", folio.GuestID),
		slog.Int("nights", len(folio.Items)))
	c.JSON(http.StatusCreated, dto.ToFolioResponse(folio))
}

// listFolios godoc
// @Summary List folios
// @Description Lists the property's folios newest first with token pagination
// @Tags folios
// @Produce json
// @Param status query string false "Filter by status (OPEN or CLOSED)"
// @Param limit query int false "Page size (default 25, max 100)"
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListFoliosResponse
// @Security BearerAuth
// @Router /folios [get]
func (h *folioHandler) listFolios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListFoliosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.folioService.ListFolios(c.Request.Context(), tc, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list folios")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getFolio godoc
// @Summary Get a folio
// @Description Retrieves one folio with its items and payments
// @Tags folios
// @Produce json
// @Param id path string true "Folio ID"
// @Success 200 {object} dto.FolioResponse
// @Failure 404 {object} map[string]string "Folio not found"
// @Security BearerAuth
// @Router /folios/{id} [get]
func (h *folioHandler) getFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	folio, err := h.folioService.GetFolio(c.Request.Context(), tc, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve folio")
		return
	}
	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// addCharge godoc
// @Summary Post a charge
// @Description Posts a charge line to an open folio, computing applicable taxes
// @Tags folios
// @Accept json
// @Produce json
// @Param id path string true "Folio ID"
// @Param charge body dto.AddChargeRequest true "Charge details"
// @Success 200 {object} dto.FolioResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Folio closed or stale version"
// @Security BearerAuth
// @Router /folios/{id}/charges [post]
func (h *folioHandler) addCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	folio, err := h.folioService.AddCharge(c.Request.Context(), tc, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add charge")
		return
	}

	logger.Info("Charge posted",
		slog.String("folio_id", folio.FolioID),
		slog.String("item_type", req.ItemType),
		slog.String("balance", folio.Balance.StringFixed(2)))
	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// addAdjustment godoc
// @Summary Post a discount or manual debit
// @Description Posts a signed adjustment line with a mandatory reason
// @Tags folios
// @Accept json
// @Produce json
// @Param id path string true "Folio ID"
// @Param adjustment body dto.AddAdjustmentRequest true "Adjustment details"
// @Success 200 {object} dto.FolioResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Folio closed or stale version"
// @Security BearerAuth
// @Router /folios/{id}/adjustments [post]
func (h *folioHandler) addAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	folio, err := h.folioService.AddAdjustment(c.Request.Context(), tc, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add adjustment")
		return
	}
	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment against the folio; corporate payments may carry an advisory credit warning
// @Tags folios
// @Accept json
// @Produce json
// @Param id path string true "Folio ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Folio closed or stale version"
// @Security BearerAuth
// @Router /folios/{id}/payments [post]
func (h *folioHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	folio, warning, err := h.folioService.RecordPayment(c.Request.Context(), tc, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded",
		slog.String("folio_id", folio.FolioID),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.String("balance", folio.Balance.StringFixed(2)))
	c.JSON(http.StatusOK, dto.RecordPaymentResponse{
		Folio:         dto.ToFolioResponse(folio),
		CreditWarning: warning,
	})
}

// voidItem godoc
// @Summary Void a charge
// @Description Soft-voids a charge line; the original row is preserved for audit
// @Tags folios
// @Accept json
// @Produce json
// @Param id path string true "Folio ID"
// @Param itemID path string true "Item ID"
// @Param void body dto.VoidRequest true "Void reason"
// @Success 200 {object} dto.FolioResponse
// @Failure 409 {object} map[string]string "Item already voided or stale version"
// @Security BearerAuth
// @Router /folios/{id}/items/{itemID}/void [post]
func (h *folioHandler) voidItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.VoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	folio, err := h.folioService.VoidItem(c.Request.Context(), tc, c.Param("id"), c.Param("itemID"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to void item")
		return
	}

	logger.Info("Item voided", slog.String("folio_id", folio.FolioID), slog.String("item_id", c.Param("itemID")))
	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// voidPayment godoc
// @Summary Void a payment
// @Description Soft-voids a payment, raising the folio balance by its amount
// @Tags folios
// @Accept json
// @Produce json
// @Param id path string true "Folio ID"
// @Param paymentID path string true "Payment ID"
// @Param void body dto.VoidRequest true "Void reason"
// @Success 200 {object} dto.FolioResponse
// @Failure 409 {object} map[string]string "Payment already voided or stale version"
// @Security BearerAuth
// @Router /folios/{id}/payments/{paymentID}/void [post]
func (h *folioHandler) voidPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.VoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	folio, err := h.folioService.VoidPayment(c.Request.Context(), tc, c.Param("id"), c.Param("paymentID"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to void payment")
		return
	}

	logger.Info("Payment voided", slog.String("folio_id", folio.FolioID), slog.String("payment_id", c.Param("paymentID")))
	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// transferItem godoc
// @Summary Transfer a charge to another folio
// @Description Moves a non-voided item to a different open folio, recomputing both
// @Tags folios
// @Accept json
// @Produce json
// @Param id path string true "Source folio ID"
// @Param itemID path string true "Item ID"
// @Param transfer body dto.TransferItemRequest true "Transfer details"
// @Success 200 {object} dto.TransferItemResponse
// @Failure 409 {object} map[string]string "Folio closed, item voided, or stale version"
// @Security BearerAuth
// @Router /folios/{id}/items/{itemID}/transfer [post]
func (h *folioHandler) transferItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.TransferItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	source, target, err := h.folioService.TransferItem(c.Request.Context(), tc, c.Param("id"), c.Param("itemID"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to transfer item")
		return
	}

	logger.Info("Item transferred",
		slog.String("item_id", c.Param("itemID")),
		slog.String("source_folio_id", source.FolioID),
		slog.String("target_folio_id", target.FolioID))
	c.JSON(http.StatusOK, dto.TransferItemResponse{
		Source: dto.ToFolioResponse(source),
		Target: dto.ToFolioResponse(target),
	})
}

// splitFolio godoc
// @Summary Split a folio
// @Description Re-parents the selected items onto a newly created folio for the same guest
// @Tags folios
// @Accept json
// @Produce json
// @Param id path string true "Source folio ID"
// @Param split body dto.SplitFolioRequest true "Item IDs to move"
// @Success 201 {object} dto.SplitFolioResponse
// @Failure 400 {object} map[string]string "No items selected or item not movable"
// @Security BearerAuth
// @Router /folios/{id}/split [post]
func (h *folioHandler) splitFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SplitFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	source, created, err := h.folioService.SplitFolio(c.Request.Context(), tc, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to split folio")
		return
	}

	logger.Info("Folio split",
		slog.String("source_folio_id", source.FolioID),
		slog.String("created_folio_id", created.FolioID),
		slog.Int("items_moved", len(req.ItemIDs)))
	c.JSON(http.StatusCreated, dto.SplitFolioResponse{
		Source:  dto.ToFolioResponse(source),
		Created: dto.ToFolioResponse(created),
	})
}

// closeFolio godoc
// @Summary Close a folio
// @Description Transitions the folio to CLOSED; fails unless the balance is zero
// @Tags folios
// @Accept json
// @Produce json
// @Param id path string true "Folio ID"
// @Param close body dto.CloseFolioRequest true "Optimistic version"
// @Success 200 {object} dto.FolioResponse
// @Failure 409 {object} map[string]string "Balance not zero, already closed, or stale version"
// @Security BearerAuth
// @Router /folios/{id}/close [post]
func (h *folioHandler) closeFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CloseFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	folio, err := h.folioService.CloseFolio(c.Request.Context(), tc, c.Param("id"), req.Version)
	if err != nil {
		respondWithError(c, logger, err, "Failed to close folio")
		return
	}

	logger.Info("Folio closed", slog.String("folio_id", folio.FolioID))
	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// reopenFolio godoc
// @Summary Reopen a folio
// @Description Transitions a closed folio back to OPEN for corrections
// @Tags folios
// @Accept json
// @Produce json
// @Param id path string true "Folio ID"
// @Param reopen body dto.CloseFolioRequest true "Optimistic version"
// @Success 200 {object} dto.FolioResponse
// @Failure 404 {object} map[string]string "Folio not found"
// @Security BearerAuth
// @Router /folios/{id}/reopen [post]
func (h *folioHandler) reopenFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CloseFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	folio, err := h.folioService.ReopenFolio(c.Request.Context(), tc, c.Param("id"), req.Version)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reopen folio")
		return
	}

	logger.Info("Folio reopened", slog.String("folio_id", folio.FolioID))
	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

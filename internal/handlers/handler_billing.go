package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nordpeak/backoffice_app/internal/apperrors"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/internal/dto"
	"github.com/nordpeak/backoffice_app/internal/middleware"
)

// billingHandler handles HTTP requests related to billing records.
type billingHandler struct {
	billingService portssvc.BillingSvcFacade
}

func newBillingHandler(bs portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{billingService: bs}
}

// registerBillingRoutes registers routes related to billing records.
func registerBillingRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	billings := rg.Group("/billings")
	{
		billings.POST("", h.createBilling)
		billings.GET("", h.listBillings)
		billings.GET("/:id", h.getBillingByID)
		billings.PUT("/:id", h.updateBilling)
		billings.DELETE("/:id", h.deleteBilling)
		billings.POST("/bulk-delete", h.bulkDeleteBillings)
	}
}

// createBilling godoc
// @Summary Create a billing record
// @Tags billings
// @Accept json
// @Produce json
// @Param billing body dto.CreateBillingRequest true "Billing details"
// @Success 201 {object} dto.BillingResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create billing"
// @Router /billings [post]
func (h *billingHandler) createBilling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBilling", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	created, err := h.billingService.CreateBilling(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create billing in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create billing"})
		}
		return
	}

	logger.Info("Billing created successfully", slog.Int64("billing_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToBillingResponse(created))
}

// listBillings godoc
// @Summary List all billing records
// @Tags billings
// @Produce json
// @Success 200 {array} dto.BillingResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list billings"
// @Router /billings [get]
func (h *billingHandler) listBillings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	billings, err := h.billingService.ListBillings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list billings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list billings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillingResponse(billings))
}

// getBillingByID godoc
// @Summary Get a billing record by id
// @Tags billings
// @Produce json
// @Param id path int true "Billing ID"
// @Success 200 {object} dto.BillingResponse
// @Failure 404 {object} dto.ErrorResponse "Billing not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve billing"
// @Router /billings/{id} [get]
func (h *billingHandler) getBillingByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	billing, err := h.billingService.GetBillingByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Billing not found"})
		} else {
			logger.Error("Failed to get billing from service", slog.Int64("billing_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve billing"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillingResponse(billing))
}

// updateBilling godoc
// @Summary Update a billing record
// @Description Applies a partial update; omitted fields are left unchanged
// @Tags billings
// @Accept json
// @Produce json
// @Param id path int true "Billing ID"
// @Param billing body dto.UpdateBillingRequest true "Fields to update"
// @Success 200 {object} dto.BillingResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Billing not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update billing"
// @Router /billings/{id} [put]
func (h *billingHandler) updateBilling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBilling", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	updated, err := h.billingService.UpdateBilling(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Billing not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update billing in service", slog.Int64("billing_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update billing"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillingResponse(updated))
}

// deleteBilling godoc
// @Summary Delete a billing record
// @Tags billings
// @Produce json
// @Param id path int true "Billing ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Billing not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete billing"
// @Router /billings/{id} [delete]
func (h *billingHandler) deleteBilling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.billingService.DeleteBilling(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Billing not found"})
		} else {
			logger.Error("Failed to delete billing in service", slog.Int64("billing_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete billing"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// bulkDeleteBillings godoc
// @Summary Delete multiple billing records
// @Tags billings
// @Accept json
// @Produce json
// @Param ids body dto.BulkDeleteRequest true "Billing ids"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete billings"
// @Router /billings/bulk-delete [post]
func (h *billingHandler) bulkDeleteBillings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.billingService.DeleteBillings(c.Request.Context(), req.IDs); err != nil {
		logger.Error("Failed to bulk delete billings", slog.Int("count", len(req.IDs)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete billings"})
		return
	}

	c.Status(http.StatusNoContent)
}

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

// partnerHandler handles HTTP requests related to partners.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

func newPartnerHandler(ps portssvc.PartnerSvcFacade) *partnerHandler {
	return &partnerHandler{partnerService: ps}
}

// registerPartnerRoutes registers routes related to partners.
func registerPartnerRoutes(rg *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade) {
	h := newPartnerHandler(partnerService)

	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("", h.listPartners)
		partners.GET("/:id", h.getPartnerByID)
		partners.PUT("/:id", h.updatePartner)
		partners.DELETE("/:id", h.deletePartner)
		partners.POST("/bulk-delete", h.bulkDeletePartners)
	}
}

// createPartner godoc
// @Summary Create a new partner
// @Tags partners
// @Accept json
// @Produce json
// @Param partner body dto.CreatePartnerRequest true "Partner details"
// @Success 201 {object} dto.PartnerResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create partner"
// @Router /partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePartner", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	created, err := h.partnerService.CreatePartner(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create partner in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create partner"})
		}
		return
	}

	logger.Info("Partner created successfully", slog.Int64("partner_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToPartnerResponse(created))
}

// listPartners godoc
// @Summary List all partners
// @Tags partners
// @Produce json
// @Success 200 {array} dto.PartnerResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list partners"
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	partners, err := h.partnerService.ListPartners(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list partners from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list partners"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPartnerResponse(partners))
}

// getPartnerByID godoc
// @Summary Get a partner by id
// @Tags partners
// @Produce json
// @Param id path int true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} dto.ErrorResponse "Partner not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve partner"
// @Router /partners/{id} [get]
func (h *partnerHandler) getPartnerByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Partner not found"})
		} else {
			logger.Error("Failed to get partner from service", slog.Int64("partner_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve partner"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}

// updatePartner godoc
// @Summary Update a partner
// @Description Applies a partial update; omitted fields are left unchanged
// @Tags partners
// @Accept json
// @Produce json
// @Param id path int true "Partner ID"
// @Param partner body dto.UpdatePartnerRequest true "Fields to update"
// @Success 200 {object} dto.PartnerResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Partner not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update partner"
// @Router /partners/{id} [put]
func (h *partnerHandler) updatePartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePartner", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	updated, err := h.partnerService.UpdatePartner(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Partner not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update partner in service", slog.Int64("partner_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update partner"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponse(updated))
}

// deletePartner godoc
// @Summary Delete a partner
// @Tags partners
// @Produce json
// @Param id path int true "Partner ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Partner not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete partner"
// @Router /partners/{id} [delete]
func (h *partnerHandler) deletePartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.partnerService.DeletePartner(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Partner not found"})
		} else {
			logger.Error("Failed to delete partner in service", slog.Int64("partner_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete partner"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// bulkDeletePartners godoc
// @Summary Delete multiple partners
// @Tags partners
// @Accept json
// @Produce json
// @Param ids body dto.BulkDeleteRequest true "Partner ids"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete partners"
// @Router /partners/bulk-delete [post]
func (h *partnerHandler) bulkDeletePartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.partnerService.DeletePartners(c.Request.Context(), req.IDs); err != nil {
		logger.Error("Failed to bulk delete partners", slog.Int("count", len(req.IDs)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete partners"})
		return
	}

	c.Status(http.StatusNoContent)
}

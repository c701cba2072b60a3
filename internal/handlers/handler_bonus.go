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

// bonusHandler handles HTTP requests related to bonuses, including the
// quarterly calculator endpoint.
type bonusHandler struct {
	bonusService portssvc.BonusSvcFacade
}

func newBonusHandler(bs portssvc.BonusSvcFacade) *bonusHandler {
	return &bonusHandler{bonusService: bs}
}

// registerBonusRoutes registers routes related to bonuses.
func registerBonusRoutes(rg *gin.RouterGroup, bonusService portssvc.BonusSvcFacade) {
	h := newBonusHandler(bonusService)

	bonuses := rg.Group("/bonuses")
	{
		bonuses.POST("", h.createBonus)
		bonuses.GET("", h.listBonuses)
		bonuses.GET("/:id", h.getBonusByID)
		bonuses.PUT("/:id", h.updateBonus)
		bonuses.DELETE("/:id", h.deleteBonus)
		bonuses.POST("/bulk-delete", h.bulkDeleteBonuses)
		bonuses.POST("/calculate-quarterly", h.calculateQuarterlyBonuses)
	}
}

// calculateQuarterlyBonuses godoc
// @Summary Calculate and persist quarterly bonuses
// @Description Computes one bonus per percentage-map entry as a share of the project's quarter billing total and persists the batch atomically
// @Tags bonuses
// @Accept json
// @Produce json
// @Param request body dto.CalculateQuarterlyBonusesRequest true "Quarter, year, optional id restrictions and percentage map"
// @Success 201 {object} dto.QuarterlyBonusesResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to calculate bonuses"
// @Router /bonuses/calculate-quarterly [post]
func (h *bonusHandler) calculateQuarterlyBonuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateQuarterlyBonusesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateQuarterlyBonuses", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	bonuses, err := h.bonusService.CalculateQuarterlyBonuses(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to calculate quarterly bonuses", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to calculate bonuses"})
		}
		return
	}

	logger.Info("Quarterly bonuses calculated",
		slog.Int("quarter", req.Quarter),
		slog.Int("year", req.Year),
		slog.Int("bonus_count", len(bonuses)))
	c.JSON(http.StatusCreated, dto.QuarterlyBonusesResponse{
		Message: "Quarterly bonuses calculated successfully",
		Bonuses: dto.ToListBonusResponse(bonuses),
	})
}

// createBonus godoc
// @Summary Create a bonus manually
// @Tags bonuses
// @Accept json
// @Produce json
// @Param bonus body dto.CreateBonusRequest true "Bonus details"
// @Success 201 {object} dto.BonusResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create bonus"
// @Router /bonuses [post]
func (h *bonusHandler) createBonus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBonus", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	created, err := h.bonusService.CreateBonus(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create bonus in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create bonus"})
		}
		return
	}

	logger.Info("Bonus created successfully", slog.Int64("bonus_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToBonusResponse(created))
}

// listBonuses godoc
// @Summary List all bonuses
// @Tags bonuses
// @Produce json
// @Success 200 {array} dto.BonusResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list bonuses"
// @Router /bonuses [get]
func (h *bonusHandler) listBonuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bonuses, err := h.bonusService.ListBonuses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list bonuses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list bonuses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBonusResponse(bonuses))
}

// getBonusByID godoc
// @Summary Get a bonus by id
// @Tags bonuses
// @Produce json
// @Param id path int true "Bonus ID"
// @Success 200 {object} dto.BonusResponse
// @Failure 404 {object} dto.ErrorResponse "Bonus not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve bonus"
// @Router /bonuses/{id} [get]
func (h *bonusHandler) getBonusByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	bonus, err := h.bonusService.GetBonusByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Bonus not found"})
		} else {
			logger.Error("Failed to get bonus from service", slog.Int64("bonus_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve bonus"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBonusResponse(bonus))
}

// updateBonus godoc
// @Summary Update a bonus
// @Description Applies a partial update; omitted fields are left unchanged
// @Tags bonuses
// @Accept json
// @Produce json
// @Param id path int true "Bonus ID"
// @Param bonus body dto.UpdateBonusRequest true "Fields to update"
// @Success 200 {object} dto.BonusResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Bonus not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update bonus"
// @Router /bonuses/{id} [put]
func (h *bonusHandler) updateBonus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBonus", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	updated, err := h.bonusService.UpdateBonus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Bonus not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update bonus in service", slog.Int64("bonus_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update bonus"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBonusResponse(updated))
}

// deleteBonus godoc
// @Summary Delete a bonus
// @Tags bonuses
// @Produce json
// @Param id path int true "Bonus ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Bonus not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete bonus"
// @Router /bonuses/{id} [delete]
func (h *bonusHandler) deleteBonus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.bonusService.DeleteBonus(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Bonus not found"})
		} else {
			logger.Error("Failed to delete bonus in service", slog.Int64("bonus_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete bonus"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// bulkDeleteBonuses godoc
// @Summary Delete multiple bonuses
// @Tags bonuses
// @Accept json
// @Produce json
// @Param ids body dto.BulkDeleteRequest true "Bonus ids"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete bonuses"
// @Router /bonuses/bulk-delete [post]
func (h *bonusHandler) bulkDeleteBonuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.bonusService.DeleteBonuses(c.Request.Context(), req.IDs); err != nil {
		logger.Error("Failed to bulk delete bonuses", slog.Int("count", len(req.IDs)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete bonuses"})
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/http/response"
	"github.com/nutriserv/supply-backend/internal/services"
)

type AverageHandler struct {
	averageService services.AverageService
}

func NewAverageHandler(averageService services.AverageService) *AverageHandler {
	return &AverageHandler{averageService: averageService}
}

type averageKeyRequest struct {
	SchoolID       uuid.UUID `json:"school_id" binding:"required"`
	NutritionistID uuid.UUID `json:"nutritionist_id" binding:"required"`
	AsOf           string    `json:"as_of" binding:"required"`
}

// POST /api/averages/compute
func (h *AverageHandler) Compute(c *gin.Context) {
	var req averageKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	asOf, err := parseDate(req.AsOf)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	averages, err := h.averageService.ComputeAverages(c.Request.Context(), nil, req.SchoolID, req.NutritionistID, asOf)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"averages": averages})
}

// POST /api/averages/recompute
func (h *AverageHandler) Recompute(c *gin.Context) {
	var req averageKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	asOf, err := parseDate(req.AsOf)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	snapshot, err := h.averageService.RecomputeSnapshot(c.Request.Context(), nil, req.SchoolID, req.NutritionistID, asOf)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"snapshot": snapshot})
}

// PUT /api/averages/manual
func (h *AverageHandler) SetManual(c *gin.Context) {
	var req struct {
		SchoolID       uuid.UUID              `json:"school_id" binding:"required"`
		NutritionistID uuid.UUID              `json:"nutritionist_id" binding:"required"`
		Averages       map[types.MealType]int `json:"averages" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	snapshot, err := h.averageService.SetManualAverages(c.Request.Context(), nil, req.SchoolID, req.NutritionistID, req.Averages)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"snapshot": snapshot})
}

// GET /api/averages/:school_id/:nutritionist_id
func (h *AverageHandler) GetSnapshot(c *gin.Context) {
	schoolID, err := uuid.Parse(c.Param("school_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	nutritionistID, err := uuid.Parse(c.Param("nutritionist_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	snapshot, err := h.averageService.GetSnapshot(c.Request.Context(), nil, schoolID, nutritionistID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"snapshot": snapshot})
}

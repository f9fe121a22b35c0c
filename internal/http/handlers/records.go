package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutriserv/supply-backend/internal/http/response"
	"github.com/nutriserv/supply-backend/internal/services"
)

type RecordHandler struct {
	recordService services.RecordService
}

func NewRecordHandler(recordService services.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// POST /api/records
func (h *RecordHandler) Log(c *gin.Context) {
	var req struct {
		SchoolID       uuid.UUID             `json:"school_id" binding:"required"`
		NutritionistID uuid.UUID             `json:"nutritionist_id" binding:"required"`
		Date           string                `json:"date" binding:"required"`
		Entries        []services.DailyEntry `json:"entries" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	created, err := h.recordService.LogDailyRecords(c.Request.Context(), nil, req.SchoolID, req.NutritionistID, date, req.Entries)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"records": created})
}

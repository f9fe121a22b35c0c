package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutriserv/supply-backend/internal/http/response"
	"github.com/nutriserv/supply-backend/internal/pkg/ctxutil"
	"github.com/nutriserv/supply-backend/internal/services"
)

type NecessityHandler struct {
	necessityService services.NecessityService
	exportService    services.ExportService
}

func NewNecessityHandler(necessityService services.NecessityService, exportService services.ExportService) *NecessityHandler {
	return &NecessityHandler{
		necessityService: necessityService,
		exportService:    exportService,
	}
}

func requesterEmail(c *gin.Context) (string, error) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.RequesterEmail == "" {
		return "", errors.New("missing X-Requester-Email header")
	}
	return rd.RequesterEmail, nil
}

// POST /api/necessities/project
func (h *NecessityHandler) Project(c *gin.Context) {
	email, err := requesterEmail(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "missing_requester", err)
		return
	}

	var req struct {
		SchoolID        uuid.UUID `json:"school_id" binding:"required"`
		NutritionistID  uuid.UUID `json:"nutritionist_id"`
		ConsumptionDate string    `json:"consumption_date" binding:"required"`
		SupplyWeek      string    `json:"supply_week"`
		Lines           []struct {
			ProductID  uuid.UUID       `json:"product_id"`
			Adjustment decimal.Decimal `json:"adjustment"`
		} `json:"lines" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	date, err := parseDate(req.ConsumptionDate)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	input := services.ProjectionInput{
		SchoolID:        req.SchoolID,
		NutritionistID:  req.NutritionistID,
		ConsumptionDate: date,
		SupplyWeek:      req.SupplyWeek,
		RequesterEmail:  email,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, services.ProjectionLine{
			ProductID:  line.ProductID,
			Adjustment: line.Adjustment,
		})
	}

	result, err := h.necessityService.ProjectNecessities(c.Request.Context(), nil, input)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GET /api/necessities?school_id=&consumption_date=
func (h *NecessityHandler) List(c *gin.Context) {
	schoolID, err := uuid.Parse(c.Query("school_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("invalid school_id: %w", err))
		return
	}
	date, err := parseDate(c.Query("consumption_date"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	rows, err := h.necessityService.ListNecessities(c.Request.Context(), nil, schoolID, date)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"necessities": rows})
}

// GET /api/necessities/export?school_id=&consumption_date=
func (h *NecessityHandler) Export(c *gin.Context) {
	schoolID, err := uuid.Parse(c.Query("school_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("invalid school_id: %w", err))
		return
	}
	date, err := parseDate(c.Query("consumption_date"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	data, filename, err := h.exportService.ExportNecessities(c.Request.Context(), nil, schoolID, date)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

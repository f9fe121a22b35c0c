package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/http/response"
	"github.com/nutriserv/supply-backend/internal/services"
)

type PerCapitaHandler struct {
	perCapitaService services.PerCapitaService
}

func NewPerCapitaHandler(perCapitaService services.PerCapitaService) *PerCapitaHandler {
	return &PerCapitaHandler{perCapitaService: perCapitaService}
}

type perCapitaFactors map[types.MealType]decimal.Decimal

// POST /api/per-capita
func (h *PerCapitaHandler) Create(c *gin.Context) {
	var req struct {
		ProductID uuid.UUID        `json:"product_id" binding:"required"`
		Factors   perCapitaFactors `json:"factors" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	row, err := h.perCapitaService.CreateProfile(c.Request.Context(), nil, req.ProductID, req.Factors)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": row})
}

// PUT /api/per-capita/:id
func (h *PerCapitaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req struct {
		Factors perCapitaFactors `json:"factors" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	row, err := h.perCapitaService.UpdateProfile(c.Request.Context(), nil, id, req.Factors)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": row})
}

// DELETE /api/per-capita/:id
func (h *PerCapitaHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.perCapitaService.Deactivate(c.Request.Context(), nil, id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// POST /api/per-capita/:id/reactivate
func (h *PerCapitaHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.perCapitaService.Reactivate(c.Request.Context(), nil, id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/per-capita/:product_id
func (h *PerCapitaHandler) Lookup(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	factors, err := h.perCapitaService.Lookup(c.Request.Context(), nil, productID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"factors": factors})
}

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/http/response"
	"github.com/nutriserv/supply-backend/internal/services"
)

type ReceiptHandler struct {
	deliveryService services.DeliveryService
}

func NewReceiptHandler(deliveryService services.DeliveryService) *ReceiptHandler {
	return &ReceiptHandler{deliveryService: deliveryService}
}

// POST /api/receipts
func (h *ReceiptHandler) Record(c *gin.Context) {
	var req struct {
		SchoolID    uuid.UUID `json:"school_id" binding:"required"`
		ReceiptDate string    `json:"receipt_date" binding:"required"`
		Category    string    `json:"category" binding:"required"`
		Notes       string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	date, err := parseDate(req.ReceiptDate)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	receipt, err := h.deliveryService.RecordReceipt(c.Request.Context(), nil, req.SchoolID, date, types.DeliveryCategory(req.Category), req.Notes)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"receipt": receipt})
}

// GET /api/receipts/classify?date=&category=
func (h *ReceiptHandler) Classify(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	status, err := h.deliveryService.Classify(date, types.DeliveryCategory(c.Query("category")))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"status": status})
}

// GET /api/receipts?school_id=&from=&to=
func (h *ReceiptHandler) List(c *gin.Context) {
	schoolID, err := uuid.Parse(c.Query("school_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("invalid school_id: %w", err))
		return
	}

	var from, to time.Time
	if v := c.Query("from"); v != "" {
		if from, err = parseDate(v); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = parseDate(v); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
	}

	rows, err := h.deliveryService.ListReceipts(c.Request.Context(), nil, schoolID, from, to)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"receipts": rows})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
)

// WebhookHandler receives sales pushed by external storefronts. Routes are
// authenticated by API key, not by the admin bearer token.
type WebhookHandler struct{ svc service.SaleService }

func NewWebhookHandler(svc service.SaleService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

func (h *WebhookHandler) CreateSale(c *gin.Context) {
	var req dto.WebhookSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateFromWebhook(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

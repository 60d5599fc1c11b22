package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
)

type AuditLogHandler struct{ svc service.AuditService }

func NewAuditLogHandler(svc service.AuditService) *AuditLogHandler {
	return &AuditLogHandler{svc: svc}
}

func (h *AuditLogHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

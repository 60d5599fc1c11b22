package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
)

type DonationsHandler struct{ svc service.DonationService }

func NewDonationsHandler(svc service.DonationService) *DonationsHandler {
	return &DonationsHandler{svc: svc}
}

func (h *DonationsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DonationsHandler) Create(c *gin.Context) {
	var req dto.CreateDonationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/apierror"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Metrics(c *gin.Context) {
	resp, err := h.svc.Metrics(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

// Forecast serves the annual projection. ?year= defaults to the current year.
func (h *DashboardHandler) Forecast(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			c.JSON(http.StatusBadRequest, apierror.New("invalid year"))
			return
		}
		year = parsed
	}
	resp, err := h.svc.Forecast(c.Request.Context(), year)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

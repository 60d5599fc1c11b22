package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
)

type CustomersHandler struct{ svc service.CustomerService }

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

func (h *CustomersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/apierror"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid credentials"))
		return
	}
	respondData(c, http.StatusOK, resp)
}

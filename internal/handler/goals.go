package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
)

type GoalsHandler struct{ svc service.GoalService }

func NewGoalsHandler(svc service.GoalService) *GoalsHandler {
	return &GoalsHandler{svc: svc}
}

func (h *GoalsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *GoalsHandler) Upsert(c *gin.Context) {
	var req dto.UpsertGoalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Upsert(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *GoalsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.DeletedResponse{ID: id})
}

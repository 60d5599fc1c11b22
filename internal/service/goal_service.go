package service

import (
	"context"
	"fmt"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

type GoalService interface {
	List(ctx context.Context) ([]dto.GoalResponse, error)
	Upsert(ctx context.Context, req dto.UpsertGoalRequest) (*dto.GoalResponse, error)
	Delete(ctx context.Context, id string) error
}

type goalService struct {
	goals repository.GoalRepository
	audit AuditService
	clock Clock
}

func NewGoalService(goals repository.GoalRepository, audit AuditService) GoalService {
	return &goalService{goals: goals, audit: audit, clock: realClock{}}
}

func (s *goalService) List(ctx context.Context) ([]dto.GoalResponse, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, *goalToResponse(&goals[i]))
	}
	return out, nil
}

// Upsert replaces the goal for (year, month). Submitting the same period
// twice overwrites the targets, it never duplicates the row.
func (s *goalService) Upsert(ctx context.Context, req dto.UpsertGoalRequest) (*dto.GoalResponse, error) {
	goal := &model.Goal{
		ID:            model.MonthKey(req.Year, req.Month),
		Month:         req.Month,
		Year:          req.Year,
		SalesTarget:   req.SalesTarget,
		RevenueTarget: req.RevenueTarget,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.goals.Save(ctx, goal); err != nil {
		return nil, err
	}
	saved, err := s.goals.FindByID(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, model.AuditUpdate, model.AuditEntityGoal, goal.ID,
		fmt.Sprintf("Objectif %s défini.", goal.ID)); err != nil {
		return nil, err
	}
	return goalToResponse(saved), nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	if _, _, err := model.ParseMonthKey(id); err != nil {
		return err
	}
	if err := s.goals.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.audit.Record(ctx, model.AuditDelete, model.AuditEntityGoal, id,
		fmt.Sprintf("Objectif %s supprimé.", id))
}

func goalToResponse(g *model.Goal) *dto.GoalResponse {
	return &dto.GoalResponse{
		ID:            g.ID,
		Month:         g.Month,
		Year:          g.Year,
		SalesTarget:   g.SalesTarget,
		RevenueTarget: g.RevenueTarget,
		CreatedAt:     g.CreatedAt,
	}
}

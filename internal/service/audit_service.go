package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

// AuditService appends trail entries as a side effect of every mutation.
type AuditService interface {
	Record(ctx context.Context, action, entity, entityID, details string) error
	List(ctx context.Context) ([]dto.AuditLogResponse, error)
}

type auditService struct {
	repo repository.AuditLogRepository
}

func NewAuditService(repo repository.AuditLogRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, action, entity, entityID, details string) error {
	return s.repo.Create(ctx, &model.AuditLog{
		ID:        uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (s *auditService) List(ctx context.Context) ([]dto.AuditLogResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditLogResponse{
			ID:        e.ID,
			Action:    e.Action,
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Details:   e.Details,
			Timestamp: e.Timestamp,
		})
	}
	return out, nil
}

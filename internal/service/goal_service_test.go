package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
)

func buildGoalSvc() (*goalService, *stubGoalRepo, *stubAuditRepo) {
	goals := newStubGoalRepo()
	audit := &stubAuditRepo{}
	svc := &goalService{
		goals: goals,
		audit: NewAuditService(audit),
		clock: fixedClock{time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	return svc, goals, audit
}

func TestUpsertGoal_CreatesWithMonthKeyID(t *testing.T) {
	svc, _, _ := buildGoalSvc()

	resp, err := svc.Upsert(context.Background(), dto.UpsertGoalRequest{
		Month: 7, Year: 2025, SalesTarget: 40, RevenueTarget: d(1200),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-07", resp.ID)
	assert.Equal(t, 40, resp.SalesTarget)
}

func TestUpsertGoal_SamePeriodOverwrites(t *testing.T) {
	svc, goals, _ := buildGoalSvc()

	first, err := svc.Upsert(context.Background(), dto.UpsertGoalRequest{
		Month: 7, Year: 2025, SalesTarget: 40, RevenueTarget: d(1200),
	})
	require.NoError(t, err)

	second, err := svc.Upsert(context.Background(), dto.UpsertGoalRequest{
		Month: 7, Year: 2025, SalesTarget: 60, RevenueTarget: d(1800),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 60, second.SalesTarget)

	all, _ := goals.List(context.Background())
	require.Len(t, all, 1) // no duplicate row
	assert.Equal(t, 60, all[0].SalesTarget)
}

func TestDeleteGoal_InvalidKeyRejected(t *testing.T) {
	svc, _, _ := buildGoalSvc()
	err := svc.Delete(context.Background(), "2025-13")
	assert.ErrorContains(t, err, "month out of range")
}

func TestDeleteGoal_MissingIsNotFound(t *testing.T) {
	svc, _, _ := buildGoalSvc()
	err := svc.Delete(context.Background(), "2025-07")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteGoal_RemovesAndAudits(t *testing.T) {
	svc, goals, audit := buildGoalSvc()

	_, err := svc.Upsert(context.Background(), dto.UpsertGoalRequest{
		Month: 7, Year: 2025, SalesTarget: 40, RevenueTarget: d(1200),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "2025-07"))

	all, _ := goals.List(context.Background())
	assert.Empty(t, all)
	require.Len(t, audit.entries, 2)
	assert.Contains(t, audit.entries[1].Details, "supprimé")
}

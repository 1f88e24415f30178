package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
	"github.com/agms/agms-backend/internal/pkg/notification"
)

func defaultThresholds() models.HonorsThresholds {
	return models.HonorsThresholds{
		SummaCumLaude: 3.9,
		MagnaCumLaude: 3.85,
		CumLaude:      3.7,
	}
}

func newHonorsFixture(candidates ...*models.HonorsEntry) (*HonorsService, *fakeHonorsStore) {
	store := &fakeHonorsStore{candidates: candidates}
	service := NewHonorsService(store, &fakeAuditStore{}, notification.NewLogNotifier(), defaultThresholds())
	return service, store
}

func TestHonorsListAssignsTiers(t *testing.T) {
	service, _ := newHonorsFixture(
		&models.HonorsEntry{StudentID: 1, GPA: 3.95},
		&models.HonorsEntry{StudentID: 2, GPA: 3.87},
		&models.HonorsEntry{StudentID: 3, GPA: 3.71},
	)

	entries, finalized, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Nil(t, finalized)

	assert.Equal(t, models.HonorsSummaCumLaude, entries[0].Tier)
	assert.Equal(t, models.HonorsMagnaCumLaude, entries[1].Tier)
	assert.Equal(t, models.HonorsCumLaude, entries[2].Tier)
}

func TestHonorsListExcludesBelowCutoff(t *testing.T) {
	service, _ := newHonorsFixture(
		&models.HonorsEntry{StudentID: 1, GPA: 3.92},
		&models.HonorsEntry{StudentID: 2, GPA: 3.5},
	)

	entries, _, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].StudentID)
}

func TestHonorsFinalizeRectorateOnly(t *testing.T) {
	service, _ := newHonorsFixture()

	_, _, err := service.Finalize(context.Background(), 9, models.RoleStudentAffairs)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedRole)
}

func TestHonorsFinalizeIsTerminal(t *testing.T) {
	service, store := newHonorsFixture(
		&models.HonorsEntry{StudentID: 1, GPA: 3.92},
	)
	ctx := context.Background()

	entries, list, err := service.Finalize(ctx, 9, models.RoleRectorate)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, int64(9), list.FinalizedBy)
	assert.Len(t, entries, 1)
	assert.NotNil(t, store.finalized)

	_, _, err = service.Finalize(ctx, 9, models.RoleRectorate)
	assert.ErrorIs(t, err, apperrors.ErrHonorsListFinalized)
}

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

func newClearanceFixture(t *testing.T) (*ClearanceService, *fakeAuditStore) {
	t.Helper()
	students := newFakeStudentStore(testStudent(301, 5, cengDepartment()))
	audit := &fakeAuditStore{}
	service := NewClearanceService(newFakeClearanceStore(students), students, audit, notification.NewLogNotifier())
	return service, audit
}

func TestSetClearanceDerivesOfficeFromRole(t *testing.T) {
	service, audit := newClearanceFixture(t)
	ctx := context.Background()

	record, err := service.SetClearance(ctx, 301, 10, models.RoleLibrary, true)
	require.NoError(t, err)
	assert.True(t, record.Library)
	assert.False(t, record.SKS)

	require.Len(t, audit.events, 1)
	assert.Equal(t, models.AuditClearanceSet, audit.events[0].Action)
	assert.Equal(t, string(models.OfficeLibrary), audit.events[0].Office)
}

func TestSetClearanceRejectsNonOfficeRoles(t *testing.T) {
	service, _ := newClearanceFixture(t)
	ctx := context.Background()

	_, err := service.SetClearance(ctx, 301, 4, models.RoleAdvisor, true)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedOffice)

	_, err = service.SetClearance(ctx, 301, 5, models.RoleStudent, true)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedOffice)
}

func TestSetClearanceCanToggleUntilFinalized(t *testing.T) {
	service, _ := newClearanceFixture(t)
	ctx := context.Background()

	_, err := service.SetClearance(ctx, 301, 10, models.RoleLibrary, true)
	require.NoError(t, err)

	record, err := service.SetClearance(ctx, 301, 10, models.RoleLibrary, false)
	require.NoError(t, err)
	assert.False(t, record.Library)
}

func TestFinalizeRequiresStudentAffairs(t *testing.T) {
	service, _ := newClearanceFixture(t)

	_, err := service.Finalize(context.Background(), 301, 10, models.RoleLibrary)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedRole)
}

func TestFinalizeReportsOutstandingOffices(t *testing.T) {
	service, _ := newClearanceFixture(t)
	ctx := context.Background()

	_, err := service.SetClearance(ctx, 301, 10, models.RoleLibrary, true)
	require.NoError(t, err)
	_, err = service.SetClearance(ctx, 301, 11, models.RoleSKS, true)
	require.NoError(t, err)

	_, err = service.Finalize(ctx, 301, 12, models.RoleStudentAffairs)
	require.ErrorIs(t, err, apperrors.ErrIncompleteClearance)

	details := apperrors.Details(err)
	require.NotNil(t, details)
	assert.Equal(t, []string{
		string(models.OfficeDOITP),
		string(models.OfficeCareerOffice),
	}, details["outstandingOffices"])
}

func TestFinalizeHappyPathAndRepeat(t *testing.T) {
	service, audit := newClearanceFixture(t)
	ctx := context.Background()

	for _, role := range []models.RoleType{models.RoleLibrary, models.RoleSKS, models.RoleDOITP, models.RoleCareerOffice} {
		_, err := service.SetClearance(ctx, 301, 10, role, true)
		require.NoError(t, err)
	}

	record, err := service.Finalize(ctx, 301, 12, models.RoleStudentAffairs)
	require.NoError(t, err)
	assert.True(t, record.Finalized)
	require.NotNil(t, record.FinalizedAt)

	// Finalization is terminal
	_, err = service.Finalize(ctx, 301, 12, models.RoleStudentAffairs)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyFinalized)

	// And flags are frozen afterwards
	_, err = service.SetClearance(ctx, 301, 10, models.RoleLibrary, false)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyFinalized)

	// 4 flag events + 1 finalize event
	assert.Len(t, audit.events, 5)
}

func TestGetClearanceDefaultRecord(t *testing.T) {
	service, _ := newClearanceFixture(t)

	record, err := service.GetClearance(context.Background(), 301, 99, models.RoleStudentAffairs)
	require.NoError(t, err)
	assert.False(t, record.AllClear())
	assert.Len(t, record.Outstanding(), 4)
}

func TestGetClearanceStudentOwnershipCheck(t *testing.T) {
	service, _ := newClearanceFixture(t)
	ctx := context.Background()

	_, err := service.GetClearance(ctx, 301, 5, models.RoleStudent)
	assert.NoError(t, err)

	_, err = service.GetClearance(ctx, 301, 6, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

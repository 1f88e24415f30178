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

func newApprovalFixture(t *testing.T) (*ApprovalService, *fakeAuditStore) {
	t.Helper()
	students := newFakeStudentStore(testStudent(301, 5, cengDepartment()))
	audit := &fakeAuditStore{}
	service := NewApprovalService(newFakeRequestStore(students), students, audit, notification.NewLogNotifier())
	return service, audit
}

func TestAdvanceDerivesStageFromRole(t *testing.T) {
	service, audit := newApprovalFixture(t)
	ctx := context.Background()

	request, err := service.Advance(ctx, 301, 4, models.RoleAdvisor, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, request.AdvisorStatus)
	assert.Equal(t, models.StatusPending, request.DepartmentSecretaryStatus)

	require.Len(t, audit.events, 1)
	assert.Equal(t, models.AuditStageDecided, audit.events[0].Action)
	assert.Equal(t, string(models.StageAdvisor), audit.events[0].Stage)
	assert.Equal(t, models.RoleAdvisor, audit.events[0].ActorRole)
}

func TestAdvanceRejectsNonApprovalRoles(t *testing.T) {
	service, _ := newApprovalFixture(t)
	ctx := context.Background()

	_, err := service.Advance(ctx, 301, 4, models.RoleStudent, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedTransition)

	_, err = service.Advance(ctx, 301, 4, models.RoleLibrary, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedTransition)
}

func TestAdvanceOutOfOrderStage(t *testing.T) {
	service, _ := newApprovalFixture(t)
	ctx := context.Background()

	// The secretary cannot act before the advisor approves
	_, err := service.Advance(ctx, 301, 7, models.RoleDepartmentSecretary, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedTransition)
}

func TestAdvanceRepeatedDecision(t *testing.T) {
	service, _ := newApprovalFixture(t)
	ctx := context.Background()

	_, err := service.Advance(ctx, 301, 4, models.RoleAdvisor, models.StatusApproved)
	require.NoError(t, err)

	_, err = service.Advance(ctx, 301, 4, models.RoleAdvisor, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrStageAlreadyDecided)
}

func TestAdvanceDenialHaltsChain(t *testing.T) {
	service, _ := newApprovalFixture(t)
	ctx := context.Background()

	_, err := service.Advance(ctx, 301, 4, models.RoleAdvisor, models.StatusApproved)
	require.NoError(t, err)

	request, err := service.Advance(ctx, 301, 7, models.RoleDepartmentSecretary, models.StatusDenied)
	require.NoError(t, err)

	_, state := request.CurrentStage()
	assert.Equal(t, models.PipelineHalted, state)

	// Later stages are locked out after a denial
	_, err = service.Advance(ctx, 301, 8, models.RoleFacultyDeansOffice, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedTransition)
}

func TestAdvanceUnknownStudent(t *testing.T) {
	service, _ := newApprovalFixture(t)

	_, err := service.Advance(context.Background(), 999, 4, models.RoleAdvisor, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetRequestDefaultSnapshot(t *testing.T) {
	service, _ := newApprovalFixture(t)

	// No decision recorded yet: snapshot is all pending, not an error
	request, err := service.GetRequest(context.Background(), 301, 99, models.RoleAdvisor)
	require.NoError(t, err)
	for _, stage := range models.ApprovalStages {
		assert.Equal(t, models.StatusPending, request.StatusOf(stage))
	}
}

func TestGetRequestStudentOwnershipCheck(t *testing.T) {
	service, _ := newApprovalFixture(t)
	ctx := context.Background()

	// Student user 5 owns student record 301
	_, err := service.GetRequest(ctx, 301, 5, models.RoleStudent)
	assert.NoError(t, err)

	// A different student user cannot read it
	_, err = service.GetRequest(ctx, 301, 6, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

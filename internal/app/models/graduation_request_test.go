package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agms/agms-backend/internal/pkg/apperrors"
)

func TestNewGraduationRequestAllPending(t *testing.T) {
	request := NewGraduationRequest(301)

	for _, stage := range ApprovalStages {
		assert.Equal(t, StatusPending, request.StatusOf(stage))
	}

	currentStage, state := request.CurrentStage()
	assert.Equal(t, StageAdvisor, currentStage)
	assert.Equal(t, PipelineInProgress, state)
}

func TestApplyEnforcesStageOrder(t *testing.T) {
	request := NewGraduationRequest(301)

	// Later stages cannot act before the advisor decides
	err := request.Apply(StageDepartmentSecretary, StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedTransition)

	err = request.Apply(StageStudentAffairs, StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedTransition)

	require.NoError(t, request.Apply(StageAdvisor, StatusApproved))
	require.NoError(t, request.Apply(StageDepartmentSecretary, StatusApproved))

	// Skipping the dean's office is still illegal
	err = request.Apply(StageStudentAffairs, StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedTransition)
}

func TestApplyFullApprovalChain(t *testing.T) {
	request := NewGraduationRequest(301)

	for _, stage := range ApprovalStages {
		require.NoError(t, request.Apply(stage, StatusApproved))
	}

	currentStage, state := request.CurrentStage()
	assert.Equal(t, ApprovalStage(""), currentStage)
	assert.Equal(t, PipelineComplete, state)
	assert.True(t, request.Approved())
}

func TestApplyDecidedStageIsTerminal(t *testing.T) {
	request := NewGraduationRequest(301)
	require.NoError(t, request.Apply(StageAdvisor, StatusApproved))

	// Repeating the same decision is an error, not a silent no-op
	err := request.Apply(StageAdvisor, StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrStageAlreadyDecided)

	// And the decision cannot be flipped either
	err = request.Apply(StageAdvisor, StatusDenied)
	assert.ErrorIs(t, err, apperrors.ErrStageAlreadyDecided)
	assert.Equal(t, StatusApproved, request.AdvisorStatus)
}

func TestDenialHaltsPipeline(t *testing.T) {
	request := NewGraduationRequest(301)
	require.NoError(t, request.Apply(StageAdvisor, StatusApproved))
	require.NoError(t, request.Apply(StageDepartmentSecretary, StatusDenied))

	currentStage, state := request.CurrentStage()
	assert.Equal(t, ApprovalStage(""), currentStage)
	assert.Equal(t, PipelineHalted, state)
	assert.False(t, request.Approved())

	// No stage can act on a halted pipeline
	err := request.Apply(StageFacultyDeansOffice, StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedTransition)
}

func TestApplyRejectsNonDecision(t *testing.T) {
	request := NewGraduationRequest(301)

	err := request.Apply(StageAdvisor, StatusPending)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDecision)

	err = request.Apply(StageAdvisor, ApprovalStatus("MAYBE"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidDecision)
}

func TestCanAct(t *testing.T) {
	request := NewGraduationRequest(301)

	assert.True(t, request.CanAct(StageAdvisor))
	assert.False(t, request.CanAct(StageDepartmentSecretary))

	require.NoError(t, request.Apply(StageAdvisor, StatusApproved))
	assert.False(t, request.CanAct(StageAdvisor))
	assert.True(t, request.CanAct(StageDepartmentSecretary))
}

func TestStageForRole(t *testing.T) {
	stage, ok := StageForRole(RoleAdvisor)
	assert.True(t, ok)
	assert.Equal(t, StageAdvisor, stage)

	stage, ok = StageForRole(RoleStudentAffairs)
	assert.True(t, ok)
	assert.Equal(t, StageStudentAffairs, stage)

	// Roles outside the approval chain own no stage
	_, ok = StageForRole(RoleStudent)
	assert.False(t, ok)
	_, ok = StageForRole(RoleLibrary)
	assert.False(t, ok)
	_, ok = StageForRole(RoleRectorate)
	assert.False(t, ok)
}

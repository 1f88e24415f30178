package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
)

type fakeMessageStore struct {
	mu       sync.Mutex
	nextID   int64
	messages []*models.Message
}

func (s *fakeMessageStore) Create(_ context.Context, message *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	message.ID = s.nextID
	s.messages = append(s.messages, message)
	return nil
}

func (s *fakeMessageStore) GetInbox(_ context.Context, recipientID int64) ([]*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var inbox []*models.Message
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].RecipientID == recipientID {
			inbox = append(inbox, s.messages[i])
		}
	}
	return inbox, nil
}

func (s *fakeMessageStore) MarkRead(_ context.Context, messageID, recipientID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, message := range s.messages {
		if message.ID == messageID && message.RecipientID == recipientID {
			message.Status = models.MessageRead
			return nil
		}
	}
	return apperrors.ErrMessageNotFound
}

func newMessageFixture(t *testing.T) (*MessageService, *fakeMessageStore) {
	t.Helper()
	students := newFakeStudentStore(testStudent(301, 5, cengDepartment()))
	store := &fakeMessageStore{}
	return NewMessageService(store, students), store
}

func TestSendAdvisorToStudent(t *testing.T) {
	service, _ := newMessageFixture(t)

	message, err := service.Send(context.Background(), 4, models.RoleAdvisor, 5, "Please check your missing courses.")
	require.NoError(t, err)
	assert.Equal(t, models.MessageUnread, message.Status)
	assert.Equal(t, int64(5), message.RecipientID)
}

func TestSendRejectsNonAdvisors(t *testing.T) {
	service, _ := newMessageFixture(t)

	_, err := service.Send(context.Background(), 5, models.RoleStudent, 5, "hi")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedRole)

	_, err = service.Send(context.Background(), 10, models.RoleLibrary, 5, "hi")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorizedRole)
}

func TestSendRejectsNonStudentRecipient(t *testing.T) {
	service, _ := newMessageFixture(t)

	// User 99 has no student record
	_, err := service.Send(context.Background(), 4, models.RoleAdvisor, 99, "hi")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestInboxAndMarkRead(t *testing.T) {
	service, _ := newMessageFixture(t)
	ctx := context.Background()

	first, err := service.Send(ctx, 4, models.RoleAdvisor, 5, "first")
	require.NoError(t, err)
	_, err = service.Send(ctx, 4, models.RoleAdvisor, 5, "second")
	require.NoError(t, err)

	inbox, err := service.Inbox(ctx, 5)
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	// Newest first
	assert.Equal(t, "second", inbox[0].Body)

	require.NoError(t, service.MarkRead(ctx, first.ID, 5))
	inbox, err = service.Inbox(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.MessageRead, inbox[1].Status)

	// Another user cannot mark someone else's message
	err = service.MarkRead(ctx, first.ID, 6)
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

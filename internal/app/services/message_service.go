package services

import (
	"context"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
	"github.com/agms/agms-backend/internal/pkg/logger"
)

// MessageService lets advisors contact students about their graduation
// process
type MessageService struct {
	messages MessageStore
	students StudentStore
}

// NewMessageService creates a new message service
func NewMessageService(messages MessageStore, students StudentStore) *MessageService {
	return &MessageService{
		messages: messages,
		students: students,
	}
}

// Send delivers a message from an advisor to a student. Only advisors may
// send, and the recipient must be an existing student's user account.
func (s *MessageService) Send(ctx context.Context, senderID int64, role models.RoleType, recipientUserID int64, body string) (*models.Message, error) {
	if role != models.RoleAdvisor {
		return nil, apperrors.ErrUnauthorizedRole
	}

	if _, err := s.students.GetByUserID(ctx, recipientUserID); err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientUserID,
		Body:        body,
		Status:      models.MessageUnread,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	logger.Info().Int64("senderId", senderID).Int64("recipientId", recipientUserID).Msg("Message sent")

	return message, nil
}

// Inbox retrieves the authenticated user's messages, newest first
func (s *MessageService) Inbox(ctx context.Context, userID int64) ([]*models.Message, error) {
	return s.messages.GetInbox(ctx, userID)
}

// MarkRead marks one of the user's messages as read
func (s *MessageService) MarkRead(ctx context.Context, messageID, userID int64) error {
	return s.messages.MarkRead(ctx, messageID, userID)
}

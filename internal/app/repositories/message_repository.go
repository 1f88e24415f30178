package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
)

// MessageRepository handles database operations for advisor messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (sender_id, recipient_id, body, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID,
		message.RecipientID,
		message.Body,
		message.Status,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// GetInbox retrieves a recipient's messages, newest first, including sender
// names for display
func (r *MessageRepository) GetInbox(ctx context.Context, recipientID int64) ([]*models.Message, error) {
	query := `
		SELECT m.id, m.sender_id, m.recipient_id, m.body, m.status, m.created_at,
		       u.first_name, u.last_name, u.email, u.role_type
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.recipient_id = $1
		ORDER BY m.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving inbox: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var message models.Message
		var sender models.User
		if err := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.RecipientID,
			&message.Body,
			&message.Status,
			&message.CreatedAt,
			&sender.FirstName,
			&sender.LastName,
			&sender.Email,
			&sender.RoleType,
		); err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		sender.ID = message.SenderID
		message.Sender = &sender
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkRead marks a message as read. Only the recipient may mark their own
// messages; a mismatched recipient behaves like a missing message.
func (r *MessageRepository) MarkRead(ctx context.Context, messageID, recipientID int64) error {
	query := `
		UPDATE messages
		SET status = $3
		WHERE id = $1 AND recipient_id = $2
	`

	tag, err := r.db.Exec(ctx, query, messageID, recipientID, models.MessageRead)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}

	return nil
}

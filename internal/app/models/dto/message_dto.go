package dto

import "time"

// SendMessageRequest represents a message from an advisor to a student
type SendMessageRequest struct {
	RecipientID int64  `json:"recipientId" binding:"required,min=1"`
	Body        string `json:"body" binding:"required,max=2000"`
}

// MessageResponse represents a single message
type MessageResponse struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"senderId"`
	SenderName string    `json:"senderName,omitempty"`
	Body       string    `json:"body"`
	Status     string    `json:"status" example:"UNREAD"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InboxResponse wraps the recipient's message list
type InboxResponse struct {
	Messages []MessageResponse `json:"messages"`
}

package models

import "time"

// MessageStatus is the read state of a message
type MessageStatus string

const (
	MessageUnread MessageStatus = "UNREAD"
	MessageRead   MessageStatus = "READ"
)

// Message defines the message model based on the 'messages' table.
// Advisors use messages to contact students about their graduation process.
type Message struct {
	ID          int64         `json:"id" db:"id" example:"1"`
	SenderID    int64         `json:"senderId" db:"sender_id" example:"4"`
	RecipientID int64         `json:"recipientId" db:"recipient_id" example:"6"`
	Body        string        `json:"body" db:"body" example:"Please check your missing courses."`
	Status      MessageStatus `json:"status" db:"status" example:"UNREAD"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Sender *User `json:"sender,omitempty"`
}

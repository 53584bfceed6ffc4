package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommunityMessage is one message in the shared community stream.
type CommunityMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Sender    string    `gorm:"type:varchar(128);not null" json:"sender"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommunityMessage) TableName() string {
	return "community_messages"
}

// PostMessageRequest is the request body for posting a community message.
// The sender's display name is resolved server-side from the user id.
type PostMessageRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Text   string    `json:"text" validate:"required,max=2000" example:"Anyone up for a morning run group?"`
}

// CommunityMessageResponse is the response body for a community message.
type CommunityMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *CommunityMessage) ToResponse() CommunityMessageResponse {
	return CommunityMessageResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Sender:    m.Sender,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

// CommunityMessageListResponse is the response for the message stream,
// ordered oldest first so clients can append while polling.
type CommunityMessageListResponse struct {
	Data       []CommunityMessageResponse `json:"data"`
	Pagination PaginationResponse         `json:"pagination"`
}

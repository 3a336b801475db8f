package messaging

import (
	"encoding/json"
	"time"
)

const (
	MailKindInvitation    = "invitation"
	MailKindPasswordReset = "password_reset"
	MailKindWelcome       = "welcome"
)

// MailMessage is one outbound email queued for the mail worker.
type MailMessage struct {
	Kind      string    `json:"kind"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Link      string    `json:"link,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMailMessage(kind, to, subject, body, link string) *MailMessage {
	return &MailMessage{
		Kind:      kind,
		To:        to,
		Subject:   subject,
		Body:      body,
		Link:      link,
		Timestamp: time.Now().UTC(),
	}
}

func (m *MailMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func MailMessageFromJSON(data []byte) (*MailMessage, error) {
	var msg MailMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

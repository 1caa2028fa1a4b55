package message

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	Body        string `json:"body"`
	FileName    string `json:"file_name"`
}

type MessageResponse struct {
	ID          string `json:"id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Body        string `json:"body,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	SentAt      string `json:"sent_at"`
	ExpiresAt   string `json:"expires_at"`
}

// ConversationSummary is one row of the inbox: the peer plus the latest
// message exchanged with them.
type ConversationSummary struct {
	PeerID      string          `json:"peer_id"`
	PeerName    string          `json:"peer_name"`
	LastMessage MessageResponse `json:"last_message"`
}

type ContactResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

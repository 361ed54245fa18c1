package server

import (
	"github.com/sharkpanel/pitch-agent/internal/panel"
	"github.com/sharkpanel/pitch-agent/internal/session"
)

// StartPitchRequest is the POST /api/v1/pitch body.
type StartPitchRequest struct {
	BusinessIdea     session.BusinessIdea `json:"business_idea"`
	EntrepreneurName string               `json:"entrepreneur_name,omitempty"`
	Judges           []panel.Spec         `json:"judges,omitempty"`
}

// MessageRequest is the POST /api/v1/message body.
type MessageRequest struct {
	Sender  string `json:"sender,omitempty"`
	Content string `json:"content"`
}

// DraftReplyRequest is the POST /api/v1/draft-reply body.
type DraftReplyRequest struct {
	Message string `json:"message"`
}

// ChatResponse is returned by the pitch and message endpoints.
type ChatResponse struct {
	Response            string               `json:"response"`
	Sender              string               `json:"sender"`
	ConversationHistory []session.TurnRecord `json:"conversation_history"`
	JudgeReplies        []session.TurnRecord `json:"judge_replies,omitempty"`
}

// ConversationResponse is returned by GET /api/v1/conversation.
type ConversationResponse struct {
	ConversationHistory []session.TurnRecord  `json:"conversation_history"`
	BusinessIdea        *session.BusinessIdea `json:"business_idea"`
	CollaborationWindow string                `json:"collaboration_window,omitempty"`
}

// JudgeInfo is one panel entry in PanelResponse.
type JudgeInfo struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// PanelResponse is returned by GET /api/v1/panel.
type PanelResponse struct {
	Judges []JudgeInfo `json:"judges"`
	Count  int         `json:"count"`
}

// DraftReplyResponse is returned by POST /api/v1/draft-reply.
type DraftReplyResponse struct {
	Draft string `json:"draft"`
}

// TestConnectionResponse is returned by POST /api/v1/test-connection.
type TestConnectionResponse struct {
	Status   string `json:"status"`
	Model    string `json:"model"`
	Response string `json:"response"`
}

// StatusResponse is a generic success envelope.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ProblemDetail follows RFC 7807 for error responses.
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

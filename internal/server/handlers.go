package server

import (
	stderrors "errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	perrors "github.com/sharkpanel/pitch-agent/internal/errors"
	"github.com/sharkpanel/pitch-agent/internal/health"
	"github.com/sharkpanel/pitch-agent/internal/orchestrator"
	"github.com/sharkpanel/pitch-agent/internal/session"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	orch    *orchestrator.Orchestrator
	checker *health.Checker
	modelID string
	logger  zerolog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(orch *orchestrator.Orchestrator, checker *health.Checker, modelID string, logger zerolog.Logger) *Handlers {
	return &Handlers{
		orch:    orch,
		checker: checker,
		modelID: modelID,
		logger:  logger.With().Str("component", "handlers").Logger(),
	}
}

// StartPitch handles POST /api/v1/pitch.
func (h *Handlers) StartPitch(c *fiber.Ctx) error {
	var req StartPitchRequest
	if err := c.BodyParser(&req); err != nil {
		return problemResponse(c, fiber.StatusBadRequest,
			"invalid_body", "Bad Request",
			"Invalid request body: "+err.Error())
	}

	res, err := h.orch.StartPitch(c.Context(), req.BusinessIdea, req.EntrepreneurName, req.Judges)
	if err != nil {
		return h.orchestratorError(c, err)
	}

	return c.JSON(ChatResponse{
		Response:            fmt.Sprintf("Responses from %d judge(s)", len(res.JudgeReplies)),
		Sender:              session.RoleJudge,
		ConversationHistory: res.Transcript,
		JudgeReplies:        res.JudgeReplies,
	})
}

// SendMessage handles POST /api/v1/message.
func (h *Handlers) SendMessage(c *fiber.Ctx) error {
	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return problemResponse(c, fiber.StatusBadRequest,
			"invalid_body", "Bad Request",
			"Invalid request body: "+err.Error())
	}

	res, err := h.orch.SendMessage(c.Context(), req.Sender, req.Content)
	if err != nil {
		return h.orchestratorError(c, err)
	}

	return c.JSON(ChatResponse{
		Response:            fmt.Sprintf("Responses from %d judge(s)", len(res.JudgeReplies)),
		Sender:              session.RoleJudge,
		ConversationHistory: res.Transcript,
		JudgeReplies:        res.JudgeReplies,
	})
}

// GetConversation handles GET /api/v1/conversation.
func (h *Handlers) GetConversation(c *fiber.Ctx) error {
	view := h.orch.Transcript()
	return c.JSON(ConversationResponse{
		ConversationHistory: view.Transcript,
		BusinessIdea:        view.Idea,
		CollaborationWindow: view.Collab,
	})
}

// Reset handles POST /api/v1/reset.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	h.orch.Reset()
	return c.JSON(StatusResponse{Status: "success", Message: "Conversation reset"})
}

// GetPanel handles GET /api/v1/panel.
func (h *Handlers) GetPanel(c *fiber.Ctx) error {
	profiles := h.orch.Panel()
	judges := make([]JudgeInfo, 0, len(profiles))
	for _, p := range profiles {
		judges = append(judges, JudgeInfo{Name: p.Name, Role: p.Role})
	}
	return c.JSON(PanelResponse{Judges: judges, Count: len(judges)})
}

// DraftReply handles POST /api/v1/draft-reply.
func (h *Handlers) DraftReply(c *fiber.Ctx) error {
	var req DraftReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return problemResponse(c, fiber.StatusBadRequest,
			"invalid_body", "Bad Request",
			"Invalid request body: "+err.Error())
	}

	draft, err := h.orch.DraftReply(c.Context(), req.Message)
	if err != nil {
		return h.orchestratorError(c, err)
	}
	return c.JSON(DraftReplyResponse{Draft: draft})
}

// TestConnection handles POST /api/v1/test-connection.
func (h *Handlers) TestConnection(c *fiber.Ctx) error {
	text, err := h.orch.TestConnection(c.Context())
	if err != nil {
		return h.orchestratorError(c, err)
	}
	return c.JSON(TestConnectionResponse{
		Status:   "success",
		Model:    h.modelID,
		Response: text,
	})
}

// Liveness handles GET /healthz.
func (h *Handlers) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Readiness handles GET /readyz.
func (h *Handlers) Readiness(c *fiber.Ctx) error {
	if !h.checker.IsReady(c.Context()) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not_ready",
		})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// orchestratorError maps core errors onto HTTP problem responses.
func (h *Handlers) orchestratorError(c *fiber.Ctx, err error) error {
	switch {
	case perrors.IsValidation(err):
		return problemResponse(c, fiber.StatusBadRequest,
			"validation_failed", "Bad Request", err.Error())
	case stderrors.Is(err, perrors.ErrNoActiveSession):
		return problemResponse(c, fiber.StatusConflict,
			"no_active_session", "Conflict",
			"No active pitch session. Please start a pitch first.")
	case stderrors.Is(err, perrors.ErrNoJudgesConfigured):
		return problemResponse(c, fiber.StatusBadRequest,
			"no_judges_configured", "Bad Request",
			"The resolved judge panel is empty.")
	case perrors.IsGeneration(err):
		h.logger.Error().Err(err).Msg("generation backend failure")
		return problemResponse(c, fiber.StatusBadGateway,
			"generation_failed", "Bad Gateway", err.Error())
	default:
		h.logger.Error().Err(err).Msg("unexpected orchestrator error")
		return problemResponse(c, fiber.StatusInternalServerError,
			"internal_error", "Internal Server Error",
			"An internal error occurred")
	}
}

func problemResponse(c *fiber.Ctx, status int, errType, title, detail string) error {
	return c.Status(status).JSON(ProblemDetail{
		Type:     errType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Path(),
	})
}

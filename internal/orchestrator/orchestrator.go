// Package orchestrator drives the pitch conversation: session lifecycle,
// pitch generation, and the sequential judge-panel rounds.
package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	perrors "github.com/sharkpanel/pitch-agent/internal/errors"
	"github.com/sharkpanel/pitch-agent/internal/llm"
	"github.com/sharkpanel/pitch-agent/internal/metrics"
	"github.com/sharkpanel/pitch-agent/internal/panel"
	"github.com/sharkpanel/pitch-agent/internal/prompt"
	"github.com/sharkpanel/pitch-agent/internal/session"
)

// Config holds orchestrator configuration.
type Config struct {
	// GenerateTimeout bounds each individual backend call. Zero disables the
	// per-call timeout.
	GenerateTimeout time.Duration

	// DefaultPanel is used when StartPitch receives no panel spec. Nil falls
	// back to the built-in three-judge panel.
	DefaultPanel []panel.RoleProfile
}

// Orchestrator owns the single active session and serializes all operations
// on it. Judge invocations within a round are strictly sequential: judge N's
// prompt depends on judge N-1's output through the collaboration window.
type Orchestrator struct {
	cfg       Config
	generator llm.Generator
	metrics   *metrics.Metrics
	logger    zerolog.Logger

	mu   sync.Mutex // held for the whole of any operation, including rounds
	sess *session.Session
}

// RoundResult is returned by StartPitch and SendMessage: the full transcript
// after the call plus the judge turns produced by this call.
type RoundResult struct {
	Transcript   []session.TurnRecord
	JudgeReplies []session.TurnRecord
}

// TranscriptView is the read-only state exposed by Transcript().
type TranscriptView struct {
	Transcript []session.TurnRecord
	Idea       *session.BusinessIdea
	Collab     string
}

// New creates an orchestrator in the idle state.
func New(generator llm.Generator, cfg Config, m *metrics.Metrics, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		generator: generator,
		metrics:   m,
		logger:    logger.With().Str("component", "orchestrator").Logger(),
	}
}

// StartPitch validates the idea, builds the judge panel, atomically replaces
// any existing session, generates the entrepreneur's opening pitch, and runs
// one full judge round.
func (o *Orchestrator) StartPitch(ctx context.Context, idea session.BusinessIdea, entrepreneurName string, specs []panel.Spec) (*RoundResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	// Validation happens before the old session is touched, so a bad request
	// never destroys a good session.
	if err := idea.Validate(); err != nil {
		return nil, err
	}

	judges, err := o.resolvePanel(specs)
	if err != nil {
		return nil, err
	}
	if len(judges) == 0 {
		return nil, perrors.ErrNoJudgesConfigured
	}

	sess := session.New(idea, entrepreneurName, judges)
	o.sess = sess

	o.logger.Info().
		Str("session_id", sess.ID).
		Str("idea", idea.Name).
		Str("entrepreneur", sess.EntrepreneurName).
		Int("judges", len(judges)).
		Msg("pitch session started")

	founder := panel.Entrepreneur(sess.EntrepreneurName)
	pitchText, err := o.generate(ctx, founder, prompt.Pitch(idea, sess.EntrepreneurName), "pitch")
	if err != nil {
		o.recordRound("start_pitch", "aborted")
		return nil, err
	}

	sess.Transcript.Append(session.TurnRecord{
		Role:       session.RoleEntrepreneur,
		Content:    pitchText,
		SenderName: sess.EntrepreneurName,
	})
	o.observeTranscript(sess)

	replies, roundErr := o.judgeRound(ctx, sess)
	o.recordRound("start_pitch", roundStatus(roundErr))

	result := &RoundResult{Transcript: sess.Transcript.Snapshot(), JudgeReplies: replies}
	if roundErr != nil {
		return result, roundErr
	}
	return result, nil
}

// SendMessage appends one incoming turn to the active session and runs one
// judge round. Fails when no session is active.
func (o *Orchestrator) SendMessage(ctx context.Context, senderRole, content string) (*RoundResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sess
	if sess == nil {
		return nil, perrors.ErrNoActiveSession
	}
	if content == "" {
		return nil, perrors.NewValidationError("content", "must not be empty")
	}
	if senderRole == "" {
		senderRole = session.RoleEntrepreneur
	}

	sess.Transcript.Append(session.TurnRecord{
		Role:       senderRole,
		Content:    content,
		SenderName: sess.EntrepreneurName,
	})
	o.observeTranscript(sess)

	replies, roundErr := o.judgeRound(ctx, sess)
	o.recordRound("send_message", roundStatus(roundErr))

	result := &RoundResult{Transcript: sess.Transcript.Snapshot(), JudgeReplies: replies}
	if roundErr != nil {
		return result, roundErr
	}
	return result, nil
}

// judgeRound invokes every judge in fixed panel order. Each judge sees the
// transcript so far plus the current collaboration window, so the calls must
// not be parallelized. On failure the round aborts, keeping already-appended
// turns in place.
func (o *Orchestrator) judgeRound(ctx context.Context, sess *session.Session) ([]session.TurnRecord, error) {
	replies := make([]session.TurnRecord, 0, len(sess.Panel))

	for _, judge := range sess.Panel {
		judgePrompt, err := prompt.Judge(judge, sess.Idea, sess.Transcript.Snapshot(), sess.Collab.Render())
		if err != nil {
			return replies, err
		}

		text, err := o.generate(ctx, judge, judgePrompt, "judge_round")
		if err != nil {
			o.logger.Warn().
				Err(err).
				Str("judge", judge.Name).
				Int("turns_kept", sess.Transcript.Len()).
				Msg("judge round aborted")
			return replies, err
		}

		rec := session.TurnRecord{
			Role:      session.RoleJudge,
			Content:   text,
			JudgeName: judge.Name,
			JudgeRole: judge.Role,
		}
		// Transcript first, then the collaboration window: the window must
		// stay a suffix of the transcript's judge turns.
		sess.Transcript.Append(rec)
		sess.Collab.Record(judge.Name, text)
		o.observeTranscript(sess)

		replies = append(replies, rec)
	}

	return replies, nil
}

// generate runs one backend call with the configured per-call timeout and
// wraps failures with the speaking role and step.
func (o *Orchestrator) generate(ctx context.Context, profile panel.RoleProfile, promptText, step string) (string, error) {
	callCtx := ctx
	if o.cfg.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.cfg.GenerateTimeout)
		defer cancel()
	}

	start := time.Now()
	text, err := o.generator.Generate(callCtx, llm.Request{
		System: profile.Objective + "\n\n" + profile.Persona,
		Prompt: promptText,
	})
	elapsed := time.Since(start)

	roleLabel := "judge"
	if profile.Role == "Entrepreneur" {
		roleLabel = "entrepreneur"
	}

	if o.metrics != nil {
		o.metrics.ObserveGeneration(roleLabel, elapsed.Seconds())
	}

	if err != nil {
		if o.metrics != nil {
			o.metrics.RecordGeneration(roleLabel, "error")
			o.metrics.RecordError("orchestrator", "generation")
		}
		return "", &perrors.GenerationError{
			Role:    profile.Name,
			Step:    step,
			Message: "text generation failed",
			Err:     err,
		}
	}

	if o.metrics != nil {
		o.metrics.RecordGeneration(roleLabel, "ok")
	}
	return text, nil
}

// Transcript returns the current conversation state. Available in either
// state; empty values when idle.
func (o *Orchestrator) Transcript() TranscriptView {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.sess == nil {
		return TranscriptView{}
	}
	idea := o.sess.Idea
	return TranscriptView{
		Transcript: o.sess.Transcript.Snapshot(),
		Idea:       &idea,
		Collab:     o.sess.Collab.Render(),
	}
}

// Panel returns the active judge panel, or the default panel when idle.
func (o *Orchestrator) Panel() []panel.RoleProfile {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.sess != nil {
		out := make([]panel.RoleProfile, len(o.sess.Panel))
		copy(out, o.sess.Panel)
		return out
	}
	return o.defaultPanel()
}

// Reset clears the session slot. Idempotent.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.sess != nil {
		o.logger.Info().Str("session_id", o.sess.ID).Msg("session reset")
	}
	o.sess = nil
	if o.metrics != nil {
		o.metrics.SetTranscriptLength(0)
	}
}

// DraftReply generates a suggested entrepreneur rebuttal to the judges'
// latest feedback without mutating the session. The caller decides whether to
// send it via SendMessage.
func (o *Orchestrator) DraftReply(ctx context.Context, userMessage string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sess
	if sess == nil {
		return "", perrors.ErrNoActiveSession
	}

	founder := panel.Entrepreneur(sess.EntrepreneurName)
	replyPrompt := prompt.EntrepreneurReply(sess.Idea, sess.Transcript.Snapshot(), userMessage)
	return o.generate(ctx, founder, replyPrompt, "reply")
}

// TestConnection sends a fixed probe prompt through the backend.
func (o *Orchestrator) TestConnection(ctx context.Context) (string, error) {
	tester := panel.RoleProfile{
		Name:      "Tester",
		Role:      "Tester",
		Objective: "Test the model backend connection.",
		Persona:   "You are a simple agent created to test the API connection.",
	}
	return o.generate(ctx, tester, prompt.TestConnection(), "test_connection")
}

func (o *Orchestrator) resolvePanel(specs []panel.Spec) ([]panel.RoleProfile, error) {
	if len(specs) > 0 {
		return panel.Build(specs)
	}
	return o.defaultPanel(), nil
}

func (o *Orchestrator) defaultPanel() []panel.RoleProfile {
	if o.cfg.DefaultPanel != nil {
		out := make([]panel.RoleProfile, len(o.cfg.DefaultPanel))
		copy(out, o.cfg.DefaultPanel)
		return out
	}
	return panel.Default()
}

func (o *Orchestrator) observeTranscript(sess *session.Session) {
	if o.metrics != nil {
		o.metrics.SetTranscriptLength(sess.Transcript.Len())
	}
}

func (o *Orchestrator) recordRound(trigger, status string) {
	if o.metrics != nil {
		o.metrics.RecordRound(trigger, status)
	}
}

func roundStatus(err error) string {
	if err != nil {
		return "aborted"
	}
	return "ok"
}

// Package prompt renders the text sent to the generation backend. All
// renderers are pure functions of their inputs so they can be tested without
// touching the backend.
package prompt

import (
	"fmt"
	"strings"

	perrors "github.com/sharkpanel/pitch-agent/internal/errors"
	"github.com/sharkpanel/pitch-agent/internal/panel"
	"github.com/sharkpanel/pitch-agent/internal/session"
)

// ideaBlock serializes the seven business-idea fields. Shared by all three
// renderers so the field list lives in exactly one place.
func ideaBlock(idea session.BusinessIdea) string {
	return fmt.Sprintf(`Name: %s
Description: %s
Target Market: %s
Revenue Model: %s
Current Traction: %s
Investment Needed: %s
Use of Funds: %s`,
		idea.Name,
		idea.Description,
		idea.TargetMarket,
		idea.RevenueModel,
		idea.CurrentTraction,
		idea.InvestmentNeeded,
		idea.UseOfFunds,
	)
}

// transcriptBlock serializes the turn history as "Role: content" lines in
// insertion order.
func transcriptBlock(transcript []session.TurnRecord) string {
	lines := make([]string, 0, len(transcript))
	for _, turn := range transcript {
		lines = append(lines, turn.Role+": "+turn.Content)
	}
	return strings.Join(lines, "\n")
}

// Pitch renders the entrepreneur's opening pitch prompt.
func Pitch(idea session.BusinessIdea, entrepreneurName string) string {
	if entrepreneurName == "" {
		entrepreneurName = "Entrepreneur"
	}
	return fmt.Sprintf(`Create a compelling initial pitch for your business idea.

Your name is %s.

Your business idea:
%s

Start your pitch by greeting the judges: "Hello Sharks, I'm %s..."

Be enthusiastic and concise. Highlight the problem you're solving, your solution,
market opportunity, and why your team is uniquely positioned to succeed.
End with a clear ask for the investment amount and equity offer.`,
		entrepreneurName, ideaBlock(idea), entrepreneurName)
}

// Judge renders one judge's turn prompt from the business idea, the full
// transcript so far, and the rendered collaboration section. The collab
// section is empty for the first judge of the first round.
func Judge(profile panel.RoleProfile, idea session.BusinessIdea, transcript []session.TurnRecord, collabSection string) (string, error) {
	if profile.Name == "" {
		return "", perrors.NewValidationError("judge", "profile missing name")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `You are %s. Evaluate the entrepreneur's pitch and respond appropriately.

Business being evaluated:
%s

Conversation history:
%s
`, profile.Name, ideaBlock(idea), transcriptBlock(transcript))

	if collabSection != "" {
		fmt.Fprintf(&sb, `
What the other judges have said so far:
%s

Weigh their points in your own evaluation, but do not defer to them — reach
your own conclusion.
`, collabSection)
	}

	fmt.Fprintf(&sb, `
Respond with your thoughts, questions or investment decision. Be critical but constructive.
If you need more information, ask specific questions. If you have enough information,
make your final investment decision.

IMPORTANT: Start your response with "%s: " to identify yourself clearly.`, profile.Name)

	return sb.String(), nil
}

// EntrepreneurReply renders the entrepreneur's rebuttal prompt for a
// user-supplied message.
func EntrepreneurReply(idea session.BusinessIdea, transcript []session.TurnRecord, userMessage string) string {
	return fmt.Sprintf(`Respond to the Shark Tank judge's feedback or questions.

Your business idea:
%s

Conversation history:
%s

User's input: %s

Respond to the judge's feedback or questions thoughtfully.
Address any concerns they raise, provide additional details about your business when needed,
and try to convince them of the value of your idea. Be confident but not arrogant.`,
		ideaBlock(idea), transcriptBlock(transcript), userMessage)
}

// TestConnection is the fixed probe prompt used by the connection check.
func TestConnection() string {
	return "Say 'Hello, the connection is working!' and confirm which model backend you are."
}

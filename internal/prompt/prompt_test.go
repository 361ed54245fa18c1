package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/sharkpanel/pitch-agent/internal/errors"
	"github.com/sharkpanel/pitch-agent/internal/panel"
	"github.com/sharkpanel/pitch-agent/internal/session"
)

func testIdea() session.BusinessIdea {
	return session.BusinessIdea{
		Name:             "Acme",
		Description:      "Widgets",
		TargetMarket:     "SMB",
		RevenueModel:     "subscription",
		CurrentTraction:  "$10k MRR",
		InvestmentNeeded: "$500k",
		UseOfFunds:       "hiring",
	}
}

func TestPitch_ContainsAllFields(t *testing.T) {
	out := Pitch(testIdea(), "Jane")

	for _, want := range []string{
		"Name: Acme",
		"Description: Widgets",
		"Target Market: SMB",
		"Revenue Model: subscription",
		"Current Traction: $10k MRR",
		"Investment Needed: $500k",
		"Use of Funds: hiring",
	} {
		assert.Contains(t, out, want)
	}

	assert.Contains(t, out, `"Hello Sharks, I'm Jane..."`)
	assert.Contains(t, out, "investment amount and equity offer")
}

func TestPitch_Deterministic(t *testing.T) {
	a := Pitch(testIdea(), "Jane")
	b := Pitch(testIdea(), "Jane")
	assert.Equal(t, a, b)
}

func TestPitch_DefaultName(t *testing.T) {
	out := Pitch(testIdea(), "")
	assert.Contains(t, out, "Hello Sharks, I'm Entrepreneur")
}

func TestJudge_SerializesTranscriptInOrder(t *testing.T) {
	transcript := []session.TurnRecord{
		{Role: session.RoleEntrepreneur, Content: "my pitch"},
		{Role: session.RoleJudge, Content: "Sophia: a question"},
	}
	profile := panel.Default()[0]

	out, err := Judge(profile, testIdea(), transcript, "")
	require.NoError(t, err)

	first := strings.Index(out, "Entrepreneur: my pitch")
	second := strings.Index(out, "Judge: Sophia: a question")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestJudge_CollabSection(t *testing.T) {
	profile := panel.Default()[1]

	withCollab, err := Judge(profile, testIdea(), nil, "- Sophia: strong market take")
	require.NoError(t, err)
	assert.Contains(t, withCollab, "other judges have said")
	assert.Contains(t, withCollab, "- Sophia: strong market take")
	assert.Contains(t, withCollab, "do not defer")

	withoutCollab, err := Judge(profile, testIdea(), nil, "")
	require.NoError(t, err)
	assert.NotContains(t, withoutCollab, "other judges have said")
}

func TestJudge_PrefixInstruction(t *testing.T) {
	out, err := Judge(panel.Default()[2], testIdea(), nil, "")
	require.NoError(t, err)
	assert.Contains(t, out, `Start your response with "Elena: "`)
}

func TestJudge_MissingProfile(t *testing.T) {
	_, err := Judge(panel.RoleProfile{}, testIdea(), nil, "")
	require.Error(t, err)
	assert.True(t, perrors.IsValidation(err))
}

func TestEntrepreneurReply(t *testing.T) {
	transcript := []session.TurnRecord{
		{Role: session.RoleJudge, Content: "Marcus: what's your burn rate?"},
	}
	out := EntrepreneurReply(testIdea(), transcript, "We have 3 LOIs signed")

	assert.Contains(t, out, "Name: Acme")
	assert.Contains(t, out, "Judge: Marcus: what's your burn rate?")
	assert.Contains(t, out, "User's input: We have 3 LOIs signed")
	assert.Contains(t, out, "confident but not arrogant")
}

func TestTestConnection(t *testing.T) {
	assert.Contains(t, TestConnection(), "connection is working")
}

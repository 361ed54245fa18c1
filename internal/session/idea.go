// Package session holds the mutable state of the single active pitch
// conversation: the business idea, the transcript, and the collaboration
// window of recent judge outputs.
package session

import perrors "github.com/sharkpanel/pitch-agent/internal/errors"

// BusinessIdea is the immutable pitch subject. All seven fields are required
// at session start.
type BusinessIdea struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	TargetMarket     string `json:"target_market"`
	RevenueModel     string `json:"revenue_model"`
	CurrentTraction  string `json:"current_traction"`
	InvestmentNeeded string `json:"investment_needed"`
	UseOfFunds       string `json:"use_of_funds"`
}

// Validate returns a ValidationError naming the first empty field.
func (b BusinessIdea) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", b.Name},
		{"description", b.Description},
		{"target_market", b.TargetMarket},
		{"revenue_model", b.RevenueModel},
		{"current_traction", b.CurrentTraction},
		{"investment_needed", b.InvestmentNeeded},
		{"use_of_funds", b.UseOfFunds},
	}
	for _, f := range fields {
		if f.value == "" {
			return perrors.NewValidationError("business_idea."+f.name, "must not be empty")
		}
	}
	return nil
}

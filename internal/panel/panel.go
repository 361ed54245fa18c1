// Package panel builds the ordered judge panel and the role profiles that
// drive prompt construction. Panel order is fixed at session start and becomes
// the judge invocation order for the session's lifetime.
package panel

import (
	"strings"

	perrors "github.com/sharkpanel/pitch-agent/internal/errors"
)

// Role labels with built-in specializations. Matching is case-insensitive.
const (
	RoleMarketJudge     = "Market Judge"
	RoleFinanceJudge    = "Finance Judge"
	RoleTechnologyJudge = "Technology Judge"
)

// RoleProfile is the static description of a participant. Immutable once the
// panel is built.
type RoleProfile struct {
	Name      string
	Role      string
	Objective string
	Persona   string
}

// Spec is one caller-supplied panel entry. Objective and Persona are optional
// for recognized role labels, which always use the built-in text.
type Spec struct {
	Name      string `json:"name" yaml:"name"`
	Role      string `json:"role" yaml:"role"`
	Objective string `json:"goal" yaml:"goal"`
	Persona   string `json:"backstory" yaml:"backstory"`
}

type specialization struct {
	objective string
	persona   string
}

var specializations = map[string]specialization{
	strings.ToLower(RoleMarketJudge): {
		objective: marketObjective,
		persona:   marketPersona,
	},
	strings.ToLower(RoleFinanceJudge): {
		objective: financeObjective,
		persona:   financePersona,
	},
	strings.ToLower(RoleTechnologyJudge): {
		objective: technologyObjective,
		persona:   technologyPersona,
	},
}

// Build converts caller-supplied specs into role profiles, preserving input
// order exactly. Recognized role labels have their objective and persona
// replaced with the built-in specialization text regardless of what the
// caller supplied. Unknown labels use the caller text verbatim and fail
// validation when both objective and persona are missing.
func Build(specs []Spec) ([]RoleProfile, error) {
	profiles := make([]RoleProfile, 0, len(specs))
	for _, s := range specs {
		if s.Name == "" {
			return nil, perrors.NewValidationError("judges", "panel entry missing name")
		}

		p := RoleProfile{
			Name:      s.Name,
			Role:      s.Role,
			Objective: s.Objective,
			Persona:   s.Persona,
		}

		if sp, ok := specializations[strings.ToLower(strings.TrimSpace(s.Role))]; ok {
			p.Objective = sp.objective
			p.Persona = sp.persona
		} else if p.Objective == "" && p.Persona == "" {
			return nil, perrors.NewValidationError("judges",
				"entry "+s.Name+" has unknown role and no objective or persona")
		}

		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Default returns the built-in three-judge panel used when no explicit panel
// is supplied.
func Default() []RoleProfile {
	profiles, _ := Build([]Spec{
		{Name: "Sophia", Role: RoleMarketJudge},
		{Name: "Marcus", Role: RoleFinanceJudge},
		{Name: "Elena", Role: RoleTechnologyJudge},
	})
	return profiles
}

// Entrepreneur returns the fixed profile for the pitching role.
func Entrepreneur(name string) RoleProfile {
	if name == "" {
		name = "Entrepreneur"
	}
	return RoleProfile{
		Name:      name,
		Role:      "Entrepreneur",
		Objective: entrepreneurObjective,
		Persona:   entrepreneurPersona,
	}
}

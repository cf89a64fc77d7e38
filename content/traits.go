package content

import "github.com/lixenwraith/chipfield/chip"

// traits defines the filter categories. Keywords are lowercase substrings;
// a phrase matches a trait when it contains any of them.
var traits = []chip.Trait{
	{
		ID:       "creator",
		Label:    "Creators",
		Keywords: []string{"campaign", "launch", "milestone", "goal", "stretch"},
	},
	{
		ID:       "backer",
		Label:    "Backers",
		Keywords: []string{"back", "pledge", "reward", "support", "fans"},
	},
	{
		ID:       "treasury",
		Label:    "Treasury",
		Keywords: []string{"treasur", "payout", "fund", "budget", "balance", "withdraw"},
	},
	{
		ID:       "analytics",
		Label:    "Analytics",
		Keywords: []string{"chart", "trend", "report", "stats", "metric", "analyz"},
	},
	{
		ID:       "governance",
		Label:    "Governance",
		Keywords: []string{"vote", "proposal", "rule", "quorum", "govern"},
	},
	{
		ID:       "community",
		Label:    "Community",
		Keywords: []string{"member", "communit", "update", "announce", "poll", "digest"},
	},
	{
		ID:       "developer",
		Label:    "Developers",
		Keywords: []string{"api", "webhook", "contract", "code", "integrat", "debug"},
	},
	{
		ID:       "security",
		Label:    "Security",
		Keywords: []string{"audit", "risk", "secur", "permission", "recover", "signer"},
	},
}

// Traits returns the trait definitions in display order. Callers own the
// returned slice.
func Traits() []chip.Trait {
	out := make([]chip.Trait, len(traits))
	copy(out, traits)
	return out
}

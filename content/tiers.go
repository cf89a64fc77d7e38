package content

import "github.com/lixenwraith/chipfield/chip"

// Badge tier membership. A phrase may appear in several pools; the
// classifier's priority order picks one badge.

var boldPhrases = []string{
	"Start a new campaign",
	"Back this campaign",
	"Show my treasury balance",
	"Vote on open proposals",
	"Post a community update",
	"Create an API key",
	"Run a treasury audit",
	"Chart pledge volume by day",
	"Schedule a payout",
	"Set a funding goal",
	"Create a spending proposal",
	"What can you do?",
}

var popularPhrases = []string{
	"Increase my pledge",
	"Pick a reward tier",
	"Show new backers this week",
	"Generate a weekly report",
	"Show live funding stats",
	"Announce the next milestone",
	"Welcome new members",
	"Review pending payouts",
	"Show proposal results",
	"Track my reward shipment",
	"Show trending campaigns",
	"Give me a tour",
	"Show conversion metrics",
	"Write a milestone update",
	"Thank my top backers",
}

var proPhrases = []string{
	"Rotate my API keys",
	"Register a webhook",
	"Verify a smart contract",
	"Deploy the payout contract",
	"Simulate a contract call",
	"Stream events over the API",
	"Require multi-sig for payouts",
	"Set up a secure signer",
	"Reconcile treasury accounts",
	"Export metrics as CSV",
}

var demoPhrases = []string{
	"Show a demo campaign",
	"Load sample data",
	"Try a demo payout",
	"Open the demo dashboard",
	"Explain crowdfunding basics",
	"Show keyboard shortcuts",
	"Give me a tour",
	"What's new this week?",
}

var funPhrases = []string{
	"Surprise me",
	"Tell me a fundraising fact",
	"Roll the dice on a suggestion",
	"Make my day",
	"Celebrate with confetti",
	"Switch to dark mode",
	"Plan a launch party",
	"Find my biggest fans",
}

// Tiers assembles the badge membership sets for the classifier.
func Tiers() chip.TierSets {
	return chip.TierSets{
		Bold:    toSet(boldPhrases),
		Popular: toSet(popularPhrases),
		Pro:     toSet(proPhrases),
		Demo:    toSet(demoPhrases),
		Fun:     toSet(funPhrases),
	}
}

func toSet(phrases []string) map[string]struct{} {
	set := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		set[p] = struct{}{}
	}
	return set
}

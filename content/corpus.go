// Package content carries the build-time suggestion corpus, the trait
// definitions, and the badge tier sets of the chip field. Everything here
// is static data; nothing mutates after assembly.
package content

import (
	"strings"

	"github.com/lixenwraith/chipfield/chip"
)

// suggestions is the full phrase pool shown on the field. Order is the
// pre-shuffle corpus order; the filter engine shuffles once per session.
var suggestions = []string{
	// Campaign creation
	"Start a new campaign",
	"Set a funding goal",
	"Add a campaign milestone",
	"Draft my campaign story",
	"Upload campaign media",
	"Schedule a campaign launch",
	"Preview my campaign page",
	"Extend the campaign deadline",
	"Create an early-bird tier",
	"Duplicate my last campaign",
	"Pause an active campaign",
	"Close out a funded campaign",
	"Launch a stretch goal",
	"Write a milestone update",
	"Estimate campaign fees",

	// Backing and rewards
	"Back this campaign",
	"Increase my pledge",
	"Cancel my pledge",
	"List my backed campaigns",
	"Pick a reward tier",
	"Track my reward shipment",
	"Message campaign supporters",
	"Thank my top backers",
	"Refund a backer",
	"Export the backer list",
	"Show new backers this week",
	"Find campaigns to support",
	"Gift a pledge to a friend",
	"Upgrade my reward selection",
	"Remind backers about the survey",

	// Treasury
	"Show my treasury balance",
	"Deposit funds to the treasury",
	"Withdraw from the treasury",
	"Schedule a payout",
	"Split a payout between recipients",
	"Set a monthly budget",
	"Review pending payouts",
	"Reconcile treasury accounts",
	"Convert funds to stablecoin",
	"Set a payout threshold",
	"Freeze treasury spending",
	"Allocate funds to a milestone",
	"Forecast the runway from current balance",
	"Show unclaimed payouts",
	"Top up the gas budget",

	// Analytics
	"Chart pledge volume by day",
	"Show a funding trend line",
	"Generate a weekly report",
	"Analyze backer retention",
	"Compare campaign stats",
	"Chart treasury inflows",
	"Show conversion metrics",
	"Report on reward fulfillment",
	"Rank campaigns by growth trend",
	"Show traffic stats for my page",
	"Analyze pledge drop-off",
	"Export metrics as CSV",
	"Chart average pledge size",
	"Show live funding stats",
	"Build a custom report",

	// Governance
	"Create a spending proposal",
	"Vote on open proposals",
	"Show proposal results",
	"Set the voting quorum",
	"Delegate my vote",
	"Draft a payout rule",
	"Amend the treasury rules",
	"Schedule a governance call",
	"Close an expired proposal",
	"Show my voting history",
	"Set proposal review period",
	"Require votes for large payouts",
	"Publish the governance charter",
	"Summarize this proposal",
	"Flag a proposal for review",

	// Community
	"Post a community update",
	"Announce the next milestone",
	"Welcome new members",
	"Start a community poll",
	"Pin an announcement",
	"Invite a member to chat",
	"Moderate the community chat",
	"Share campaign updates by email",
	"Host a members-only AMA",
	"Celebrate a funding milestone with members",
	"Translate an update for members",
	"Mute a disruptive member",
	"Draft a monthly community digest",
	"Highlight a member story",
	"Cross-post updates to socials",

	// Developer
	"Create an API key",
	"Rotate my API keys",
	"Register a webhook",
	"Test a webhook delivery",
	"Show API usage limits",
	"Generate a code snippet",
	"Verify a smart contract",
	"Deploy the payout contract",
	"Integrate with my storefront",
	"Stream events over the API",
	"Debug a failed webhook",
	"Read the contract state",
	"Simulate a contract call",
	"Export data via the API",
	"Write an integration guide",

	// Security
	"Run a treasury audit",
	"Review permission grants",
	"Check my account security",
	"Enable recovery contacts",
	"Assess proposal risk",
	"Audit recent withdrawals",
	"Limit payout permissions",
	"Scan for risky approvals",
	"Set up a secure signer",
	"Recover a lost passkey",
	"Review the audit log",
	"Require multi-sig for payouts",
	"Rotate signer permissions",
	"Freeze a compromised account",
	"Export a security report",

	// General, samples, easter eggs
	"What can you do?",
	"Give me a tour",
	"Show a demo campaign",
	"Load sample data",
	"Try a demo payout",
	"Open the demo dashboard",
	"Explain crowdfunding basics",
	"Surprise me",
	"Tell me a fundraising fact",
	"Roll the dice on a suggestion",
	"Show keyboard shortcuts",
	"Switch to dark mode",
	"Make my day",
	"Celebrate with confetti",
	"Show trending campaigns",
	"What's new this week?",
	"Summarize my inbox",
	"Draft a thank-you note",
	"Plan a launch party",
	"Find my biggest fans",
}

// Corpus assembles the full token list: every suggestion phrase followed by
// the category tokens, one per trait. Callers own the returned slice.
func Corpus() []chip.Token {
	tokens := make([]chip.Token, 0, len(suggestions)+len(traits))
	for _, text := range suggestions {
		tokens = append(tokens, chip.Token{
			Text: text,
			Key:  slug(text),
		})
	}
	for _, tr := range traits {
		tokens = append(tokens, chip.Token{
			Text:       tr.Label,
			Key:        "trait." + tr.ID,
			IsCategory: true,
			TraitID:    tr.ID,
		})
	}
	return tokens
}

// SuggestionCount returns the number of non-category phrases.
func SuggestionCount() int {
	return len(suggestions)
}

// slug derives a stable key from a phrase: lowercase, alphanumerics kept,
// word breaks collapsed to single dashes.
func slug(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	dash := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}

package model

import "context"

// Advisor produces short, purely advisory strings from an external
// generative-text service. Implementations never return an error: on any
// failure they resolve to a human-readable fallback string, so order and
// cart flows can always proceed. The returned text has no semantic effect
// on totals, statuses or routing.
type Advisor interface {
	// SuggestPairing proposes one complementary item from targetCategory
	// given what is already selected.
	SuggestPairing(ctx context.Context, selected []MenuItem, targetCategory string) string

	// CharacterizeOrder returns a one-line description of the mood of an
	// order, given a human-readable summary of its item names.
	CharacterizeOrder(ctx context.Context, summary string) string

	// AnswerMenuQuestion answers a free-text question about the menu.
	AnswerMenuQuestion(ctx context.Context, question string, menu []MenuItem) string
}

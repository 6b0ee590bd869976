package command

import (
	"context"
	"strings"

	"github.com/sandevgo/brainbot/internal/core"
	"github.com/sandevgo/brainbot/pkg/log"
)

// Rule pairs a text predicate with its handler. A handler returns the
// reply text; an empty reply means "handled, nothing to say".
type Rule struct {
	Name   string
	Match  func(text string) bool
	Handle func(ctx context.Context, msg core.Incoming) (string, error)
}

type Router struct {
	rules []Rule
}

func New(rules []Rule) *Router {
	return &Router{rules: rules}
}

// Dispatch runs every rule whose predicate matches, in table order, and
// returns one reply per fired rule. Predicates are evaluated
// independently rather than first-match-wins, so a single message can
// fire more than one rule.
func (r *Router) Dispatch(ctx context.Context, msg core.Incoming) []string {
	logger := log.FromCtx(ctx)

	var replies []string
	for _, rule := range r.rules {
		if !rule.Match(msg.Text) {
			continue
		}

		reply, err := rule.Handle(ctx, msg)
		if err != nil {
			logger.Error().Err(err).
				Str("rule", rule.Name).
				Str("user", msg.AuthorName).
				Msg("command handler failed")
			replies = append(replies, ServiceFailure)
			continue
		}
		if reply != "" {
			replies = append(replies, reply)
		}
	}
	return replies
}

func prefix(p string) func(string) bool {
	return func(text string) bool {
		return strings.HasPrefix(text, p)
	}
}

func isLink(text string) bool {
	return strings.HasPrefix(text, "https://") || strings.HasPrefix(text, "http://")
}

func isQuote(text string) bool {
	return strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`)
}

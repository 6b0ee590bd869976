package command

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/brainbot/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestDispatch_FiresAllMatchingRules(t *testing.T) {
	// predicates are evaluated independently, not first-match-wins
	rules := []Rule{
		{
			Name:  "first",
			Match: func(text string) bool { return true },
			Handle: func(ctx context.Context, msg core.Incoming) (string, error) {
				return "first reply", nil
			},
		},
		{
			Name:  "never",
			Match: func(text string) bool { return false },
			Handle: func(ctx context.Context, msg core.Incoming) (string, error) {
				return "should not appear", nil
			},
		},
		{
			Name:  "second",
			Match: func(text string) bool { return true },
			Handle: func(ctx context.Context, msg core.Incoming) (string, error) {
				return "second reply", nil
			},
		},
	}

	replies := New(rules).Dispatch(context.Background(), core.Incoming{Text: "anything"})
	assert.Equal(t, []string{"first reply", "second reply"}, replies)
}

func TestDispatch_HandlerErrorBecomesFailureReply(t *testing.T) {
	rules := []Rule{
		{
			Name:  "broken",
			Match: func(text string) bool { return true },
			Handle: func(ctx context.Context, msg core.Incoming) (string, error) {
				return "", errors.New("network down")
			},
		},
		{
			Name:  "healthy",
			Match: func(text string) bool { return true },
			Handle: func(ctx context.Context, msg core.Incoming) (string, error) {
				return "still here", nil
			},
		},
	}

	// one failing handler never stops the rest of the table
	replies := New(rules).Dispatch(context.Background(), core.Incoming{Text: "anything"})
	assert.Equal(t, []string{ServiceFailure, "still here"}, replies)
}

func TestDispatch_EmptyRepliesAreDropped(t *testing.T) {
	rules := []Rule{
		{
			Name:  "silent",
			Match: func(text string) bool { return true },
			Handle: func(ctx context.Context, msg core.Incoming) (string, error) {
				return "", nil
			},
		},
	}

	replies := New(rules).Dispatch(context.Background(), core.Incoming{Text: "anything"})
	assert.Empty(t, replies)
}

func TestMatchers(t *testing.T) {
	assert.True(t, isLink("https://example.com"))
	assert.True(t, isLink("http://example.com"))
	assert.False(t, isLink("example.com"))
	assert.False(t, isLink("see https://example.com"))

	assert.True(t, isQuote(`"veni vidi vici"`))
	assert.False(t, isQuote(`"unterminated`))
	assert.False(t, isQuote(`plain text`))

	assert.True(t, prefix("?me")("?me"))
	// bare prefixes are loose on purpose: the source matched this too
	assert.True(t, prefix("?me")("?mexico"))
	assert.False(t, prefix("?info ")("?info"))
}

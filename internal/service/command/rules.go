package command

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/sandevgo/brainbot/internal/core"
	"github.com/sandevgo/brainbot/internal/hero"
)

type Lookup interface {
	FetchByID(ctx context.Context, id string) (*hero.CharacterInfo, error)
	SearchByName(ctx context.Context, name string) ([]string, error)
}

type Profiles interface {
	GetOrAssignRating(ctx context.Context, userName string) (int, error)
	AppendEntry(ctx context.Context, userName, category, value string) error
	Snapshot(ctx context.Context, userName string) (*core.Record, error)
	Clear(ctx context.Context, userName string) error
}

// NewRules builds the dispatch table. Order matters only for reply
// ordering; every matching rule fires.
func NewRules(heroes Lookup, profiles Profiles) []Rule {
	h := &handlers{heroes: heroes, profiles: profiles}

	return []Rule{
		{Name: "help", Match: prefix("?help"), Handle: h.help},
		{Name: "bio", Match: prefix("?bio"), Handle: h.bio},
		{Name: "info", Match: prefix("?info "), Handle: h.info},
		{Name: "search", Match: prefix("?search "), Handle: h.search},
		{Name: "battle", Match: prefix("?battle "), Handle: h.battle},
		{Name: "me", Match: prefix("?me"), Handle: h.me},
		{Name: "iq", Match: prefix("?iq"), Handle: h.iq},
		{Name: "absorb-link", Match: isLink, Handle: h.absorbLink},
		{Name: "links", Match: prefix("?links"), Handle: h.links},
		{Name: "absorb-quote", Match: isQuote, Handle: h.absorbQuote},
		{Name: "quotes", Match: prefix("?quotes"), Handle: h.quotes},
		{Name: "clear", Match: prefix("?clear"), Handle: h.clear},
	}
}

type handlers struct {
	heroes   Lookup
	profiles Profiles
}

func (h *handlers) help(ctx context.Context, msg core.Incoming) (string, error) {
	return HelpText, nil
}

func (h *handlers) bio(ctx context.Context, msg core.Incoming) (string, error) {
	return BioText, nil
}

func (h *handlers) info(ctx context.Context, msg core.Incoming) (string, error) {
	id := strings.TrimSpace(strings.TrimPrefix(msg.Text, "?info "))
	if _, err := strconv.Atoi(id); err != nil {
		return InfoUsage, nil
	}

	char, err := h.heroes.FetchByID(ctx, id)
	if errors.Is(err, hero.ErrNotFound) {
		return InvalidIDText(id), nil
	}
	if err != nil {
		return "", err
	}
	return hero.FormatInfo(char, msg.AuthorMention), nil
}

func (h *handlers) search(ctx context.Context, msg core.Incoming) (string, error) {
	term := strings.TrimPrefix(msg.Text, "?search ")
	ids, err := h.heroes.SearchByName(ctx, term)
	if err != nil {
		return "", err
	}
	return hero.FormatSearchResults(ids, term), nil
}

func (h *handlers) battle(ctx context.Context, msg core.Incoming) (string, error) {
	args := strings.Fields(strings.TrimPrefix(msg.Text, "?battle "))
	if len(args) != 2 {
		return BattleUsage, nil
	}
	for _, id := range args {
		if _, err := strconv.Atoi(id); err != nil {
			return BattleUsage, nil
		}
	}

	first, err := h.heroes.FetchByID(ctx, args[0])
	if errors.Is(err, hero.ErrNotFound) {
		return InvalidIDText(args[0]), nil
	}
	if err != nil {
		return "", err
	}

	second, err := h.heroes.FetchByID(ctx, args[1])
	if errors.Is(err, hero.ErrNotFound) {
		return InvalidIDText(args[1]), nil
	}
	if err != nil {
		return "", err
	}

	return hero.PredictOutcome(first, second), nil
}

func (h *handlers) me(ctx context.Context, msg core.Incoming) (string, error) {
	rec, err := h.profiles.Snapshot(ctx, msg.AuthorName)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(GatheredInfoHeader(msg.AuthorMention))
	sb.WriteString("Name: " + msg.AuthorName + "\n")

	if rec == nil {
		sb.WriteString(NoOtherInfo)
		return sb.String(), nil
	}

	for pair := rec.Oldest(); pair != nil; pair = pair.Next() {
		if items, ok := pair.Value.List(); ok {
			sb.WriteString(pair.Key + ":\n")
			for _, item := range items {
				sb.WriteString(item + "\n")
			}
			continue
		}
		sb.WriteString(pair.Key + ": " + pair.Value.String() + "\n")
	}
	return sb.String(), nil
}

func (h *handlers) iq(ctx context.Context, msg core.Incoming) (string, error) {
	rating, err := h.profiles.GetOrAssignRating(ctx, msg.AuthorName)
	if err != nil {
		return "", err
	}
	return IQReport(rating, msg.AuthorMention), nil
}

func (h *handlers) absorbLink(ctx context.Context, msg core.Incoming) (string, error) {
	if err := h.profiles.AppendEntry(ctx, msg.AuthorName, core.CategoryLinks, msg.Text); err != nil {
		return "", err
	}
	return AbsorbedText("link", msg.AuthorMention), nil
}

func (h *handlers) links(ctx context.Context, msg core.Incoming) (string, error) {
	return h.listCategory(ctx, msg, core.CategoryLinks, LinksHeader(msg.AuthorMention), NoLinksFound)
}

func (h *handlers) absorbQuote(ctx context.Context, msg core.Incoming) (string, error) {
	if err := h.profiles.AppendEntry(ctx, msg.AuthorName, core.CategoryQuotes, msg.Text); err != nil {
		return "", err
	}
	return AbsorbedText("quote", msg.AuthorMention), nil
}

func (h *handlers) quotes(ctx context.Context, msg core.Incoming) (string, error) {
	return h.listCategory(ctx, msg, core.CategoryQuotes, QuotesHeader(msg.AuthorMention), NoQuotesFound)
}

func (h *handlers) listCategory(ctx context.Context, msg core.Incoming, category, header, empty string) (string, error) {
	rec, err := h.profiles.Snapshot(ctx, msg.AuthorName)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(header)

	var items []string
	if rec != nil {
		if v, ok := rec.Get(category); ok {
			items, _ = v.List()
		}
	}
	if len(items) == 0 {
		sb.WriteString(empty)
		return sb.String(), nil
	}

	for _, item := range items {
		sb.WriteString(item + "\n")
	}
	return sb.String(), nil
}

// clear replies with nothing: the record is simply gone.
func (h *handlers) clear(ctx context.Context, msg core.Incoming) (string, error) {
	return "", h.profiles.Clear(ctx, msg.AuthorName)
}

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/sandevgo/brainbot/internal/config"
	"github.com/sandevgo/brainbot/internal/hero"
	"github.com/sandevgo/brainbot/pkg/log"
)

// Hits the live superheroapi.com service. Needs HERO_ACCESS_KEY in the
// environment, skipped otherwise.

func liveClient(t *testing.T) (context.Context, *hero.Client) {
	if os.Getenv("HERO_ACCESS_KEY") == "" {
		t.Skip("HERO_ACCESS_KEY not set")
	}

	ctx, flushLog := log.NewContextWithLogger(context.Background(), true)
	t.Cleanup(flushLog)

	return ctx, hero.NewClient(config.NewHeroConfig(ctx))
}

func TestLiveFetchByID(t *testing.T) {
	ctx, client := liveClient(t)

	info, err := client.FetchByID(ctx, "70")
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "Batman" {
		t.Fatalf("expected Batman for id 70, got %q", info.Name)
	}
}

func TestLiveFetchUnknownID(t *testing.T) {
	ctx, client := liveClient(t)

	_, err := client.FetchByID(ctx, "999999")
	if err != hero.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLiveSearchByName(t *testing.T) {
	ctx, client := liveClient(t)

	ids, err := client.SearchByName(ctx, "batman")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) == 0 {
		t.Fatal("expected at least one match for batman")
	}
}

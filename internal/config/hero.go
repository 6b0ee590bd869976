package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/brainbot/pkg/log"
)

type HeroConfig struct {
	AccessKey string        `env:"HERO_ACCESS_KEY,required,notEmpty"`
	BaseURL   string        `env:"HERO_BASE_URL" envDefault:"https://superheroapi.com/api"`
	Timeout   time.Duration `env:"HERO_TIMEOUT" envDefault:"10s"`
}

func NewHeroConfig(ctx context.Context) *HeroConfig {
	c := &HeroConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Hero config")
	}
	return c
}

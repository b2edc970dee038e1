package main

import (
	"context"
	"os"

	"github.com/lamali292/one-piece-api/internal/skill"
)

type pack struct {
	registries *skill.Registries
	load       *skill.LoadOutput
}

// loadPack builds the registries and loads every category of the data
// directory. Under the strict policy a failing category is an error, the
// returned pack still lists every problem.
func (a *app) loadPack(ctx context.Context) (*pack, error) {
	registries, err := skill.NewRegistries(nil)
	if err != nil {
		return nil, err
	}

	loader, err := skill.NewLoader(&skill.LoaderConfig{
		Rewards:    registries.Rewards,
		Experience: registries.Experience,
		Policy:     a.cfg.Policy,
	})
	if err != nil {
		return nil, err
	}

	out, err := loader.Load(ctx, os.DirFS(a.cfg.DataDir))
	if out == nil {
		return nil, err
	}
	return &pack{registries: registries, load: out}, err
}

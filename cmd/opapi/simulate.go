package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/lamali292/one-piece-api/internal/config"
	"github.com/lamali292/one-piece-api/internal/entities"
	"github.com/lamali292/one-piece-api/internal/entities/ability"
	"github.com/lamali292/one-piece-api/internal/entities/item"
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/notify"
	"github.com/lamali292/one-piece-api/internal/pkg/clock"
	redisclient "github.com/lamali292/one-piece-api/internal/redis"
	"github.com/lamali292/one-piece-api/internal/repositories/progress"
	"github.com/lamali292/one-piece-api/internal/skill"
)

type simulateFlags struct {
	player    string
	category  string
	count     int
	ticks     int64
	item      string
	itemCount int
	itemXP    int
	store     string
	redisAddr string
	boltPath  string
}

// simulation is the JSON document printed by simulate.
type simulation struct {
	Player     entities.PlayerSnapshot `json:"player"`
	Progress   *progress.Progress      `json:"progress"`
	Failed     int                     `json:"failed_rewards"`
	ItemXP     int                     `json:"item_xp"`
	TimeXP     int                     `json:"time_xp"`
	Categories int                     `json:"categories_loaded"`
}

func newSimulateCmd(a *app) *cobra.Command {
	f := &simulateFlags{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Apply a category to an in-memory player and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.simulate(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.player, "player", "simulated-player", "player id")
	flags.StringVar(&f.category, "category", "", "category id, e.g. one_piece_api:swordsman")
	flags.IntVar(&f.count, "count", 1, "unlocked count applied to every node")
	flags.Int64Var(&f.ticks, "ticks", 0, "server ticks to run")
	flags.StringVar(&f.item, "item", "", "item id to award")
	flags.IntVar(&f.itemCount, "item-count", 1, "item stack size")
	flags.IntVar(&f.itemXP, "item-xp", 0, "XP component of the item stack")
	flags.StringVar(&f.store, "store", "", "progress store: memory, redis or bolt (env OPAPI_STORE)")
	flags.StringVar(&f.redisAddr, "redis-addr", "", "redis address (env OPAPI_REDIS_ADDR)")
	flags.StringVar(&f.boltPath, "bolt-path", "", "bolt database file (env OPAPI_BOLT_PATH)")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func (a *app) simulate(cmd *cobra.Command, f *simulateFlags) error {
	ctx := cmd.Context()

	if cmd.Flags().Changed("store") {
		a.cfg.Store = config.Store(f.store)
	}
	if cmd.Flags().Changed("redis-addr") {
		a.cfg.RedisAddr = f.redisAddr
	}
	if cmd.Flags().Changed("bolt-path") {
		a.cfg.BoltPath = f.boltPath
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	if f.count < 0 {
		return errors.InvalidArgumentf("count must not be negative, got %d", f.count)
	}
	if f.ticks < 0 {
		return errors.InvalidArgumentf("ticks must not be negative, got %d", f.ticks)
	}

	categoryID, err := identifier.Parse(f.category)
	if err != nil {
		return errors.Wrapf(err, "invalid category %q", f.category)
	}

	p, err := a.loadPack(ctx)
	if err != nil {
		return err
	}

	repo, closeRepo, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	bus := notify.New(nil)
	if _, err := bus.Subscribe(notify.EventBehaviorFailed, logFailure); err != nil {
		return err
	}
	bus.Freeze()

	svc, err := skill.NewService(&skill.Config{
		Categories: p.load.Categories,
		Repository: repo,
		Bus:        bus,
		TimeConfig: &a.cfg.XPTime,
	})
	if err != nil {
		return err
	}

	player, err := entities.NewPlayer(&entities.PlayerConfig{
		ID:        f.player,
		Abilities: p.registries.Abilities,
	})
	if err != nil {
		return err
	}

	var cat *skill.Category
	for _, c := range p.load.Categories {
		if c.ID == categoryID {
			cat = c
		}
	}
	if cat == nil {
		return errors.NotFoundf("category %s is not in %s", categoryID, a.cfg.DataDir)
	}

	out := simulation{Categories: len(p.load.Categories)}

	if _, err := svc.Refresh(ctx, &skill.RefreshInput{Player: player}); err != nil {
		return err
	}
	for _, node := range cat.Nodes() {
		res, err := svc.UpdateNode(ctx, &skill.UpdateNodeInput{
			Player:   player,
			Category: cat.ID,
			Node:     node.ID,
			Count:    f.count,
		})
		if err != nil {
			return err
		}
		out.Failed += res.Failed
	}

	if f.ticks > 0 {
		handler := ability.NewHandler()
		subjects := []ability.Subject{player}
		for i := int64(0); i < f.ticks; i++ {
			handler.Tick(ctx, subjects)
		}
		res, err := svc.Tick(ctx, &skill.TickInput{Player: player, Ticks: f.ticks})
		if err != nil {
			return err
		}
		out.TimeXP = res.Total
	}

	if f.item != "" {
		itemID, err := identifier.Parse(f.item)
		if err != nil {
			return errors.Wrapf(err, "invalid item %q", f.item)
		}
		stack := item.NewStack(itemID, f.itemCount)
		if cmd.Flags().Changed("item-xp") {
			stack.WithXP(f.itemXP)
		}
		res, err := svc.AwardItem(ctx, &skill.AwardItemInput{Player: player, Stack: stack})
		if err != nil {
			return err
		}
		out.ItemXP = res.Total
	}

	progressOut, err := svc.GetProgress(ctx, &skill.GetProgressInput{PlayerID: player.GetID(), Category: cat.ID})
	if err != nil {
		return err
	}
	out.Player = player.Snapshot()
	out.Progress = progressOut.Progress

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// openStore opens the configured progress backend. The returned func
// releases it.
func (a *app) openStore(ctx context.Context) (progress.Repository, func(), error) {
	switch a.cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClient(&redisclient.Options{Addr: a.cfg.RedisAddr})
		if err != nil {
			return nil, nil, err
		}
		if err := redisclient.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		repo, err := progress.NewRedis(&progress.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil

	case config.StoreBolt:
		repo, err := progress.NewBolt(&progress.BoltConfig{Path: a.cfg.BoltPath})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				slog.Warn("failed to close progress database", "path", a.cfg.BoltPath, "error", err)
			}
		}, nil

	default:
		return progress.NewInMemory(clock.New()), func() {}, nil
	}
}

func logFailure(ctx context.Context, e events.Event) error {
	category, _ := notify.Value[string](e, notify.KeyCategory)
	node, _ := notify.Value[string](e, notify.KeyNode)
	reason, _ := notify.Value[string](e, notify.KeyError)
	slog.WarnContext(ctx, "reward skipped",
		"category", category,
		"node", node,
		"error", reason)
	return nil
}

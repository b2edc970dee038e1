package skill

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/experience"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/notify"
	"github.com/lamali292/one-piece-api/internal/repositories/progress"
	"github.com/lamali292/one-piece-api/internal/reward"
)

const (
	// Error messages
	errInputNil    = "input is required"
	errPlayerNil   = "player is required"
	errPlayerIDNil = "player ID is required"

	// Experience source labels set on awarded events
	SourceItem = "item"
	SourceTime = "time"
)

// Service defines the interface for skill progress operations
type Service interface {
	// UpdateNode sets the unlocked count of a node and updates its rewards
	UpdateNode(ctx context.Context, input *UpdateNodeInput) (*UpdateNodeOutput, error)
	// ResetNode locks a node again
	ResetNode(ctx context.Context, input *ResetNodeInput) (*ResetNodeOutput, error)
	// Refresh reapplies every saved node count of a player, e.g. after joining
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	// DisposeCategory releases a category. The category rejects every call
	// afterwards.
	DisposeCategory(ctx context.Context, input *DisposeCategoryInput) (*DisposeCategoryOutput, error)
	GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error)
	// AwardItem consumes the XP component of a stack
	AwardItem(ctx context.Context, input *AwardItemInput) (*AwardItemOutput, error)
	// Tick advances a player's play time for time experience
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)
}

// Config holds the dependencies for the skill service
type Config struct {
	Categories []*Category
	Repository progress.Repository
	// Bus receives progress events. A bus without subscribers is used when nil.
	Bus *notify.Bus
	// TimeConfig defaults to experience.DefaultTimeConfig.
	TimeConfig *experience.TimeConfig
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	seen := make(map[identifier.Identifier]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat == nil {
			vb.InvalidField("Categories", "contains a nil category")
			continue
		}
		if seen[cat.ID] {
			vb.Fieldf("Categories", "duplicate category %s", cat.ID)
		}
		seen[cat.ID] = true
	}

	if c.TimeConfig != nil {
		c.TimeConfig.ValidateFields(vb)
	}
	return vb.Build()
}

type service struct {
	order      []*Category
	categories map[identifier.Identifier]*Category
	repo       progress.Repository
	bus        *notify.Bus
	timeCfg    experience.TimeConfig

	// mu serializes progress read-modify-write and guards disposed.
	mu       sync.Mutex
	disposed map[identifier.Identifier]bool
}

var _ Service = (*service)(nil)

// NewService creates a new skill service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &service{
		order:      cfg.Categories,
		categories: make(map[identifier.Identifier]*Category, len(cfg.Categories)),
		repo:       cfg.Repository,
		bus:        cfg.Bus,
		timeCfg:    experience.DefaultTimeConfig(),
		disposed:   make(map[identifier.Identifier]bool),
	}
	if s.bus == nil {
		s.bus = notify.New(nil)
	}
	if cfg.TimeConfig != nil {
		s.timeCfg = *cfg.TimeConfig
	}
	for _, cat := range cfg.Categories {
		s.categories[cat.ID] = cat
	}
	return s, nil
}

// category looks up a live category. Callers must hold s.mu.
func (s *service) category(id identifier.Identifier) (*Category, error) {
	cat, ok := s.categories[id]
	if !ok {
		return nil, errors.NotFoundf("category %s not found", id)
	}
	if s.disposed[id] {
		return nil, errors.FailedPreconditionf("category %s is disposed", id)
	}
	return cat, nil
}

func (s *service) load(ctx context.Context, playerID string, category identifier.Identifier) (*progress.Progress, error) {
	out, err := s.repo.Get(ctx, progress.GetInput{PlayerID: playerID, Category: category.String()})
	if err != nil {
		if errors.IsNotFound(err) {
			return progress.New(playerID, category.String()), nil
		}
		return nil, errors.Wrapf(err, "failed to load progress for %s", category)
	}
	return out.Progress, nil
}

func (s *service) save(ctx context.Context, p *progress.Progress) (*progress.Progress, error) {
	out, err := s.repo.Save(ctx, progress.SaveInput{Progress: p})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save progress for %s", p.Category)
	}
	return out.Progress, nil
}

// publish delivers events after the caller released s.mu so handlers may
// call back into the service. Delivery failures do not undo saved state.
func (s *service) publish(ctx context.Context, pending []events.Event) {
	for _, e := range pending {
		if err := s.bus.Publish(ctx, e); err != nil {
			slog.WarnContext(ctx, "event handler failed",
				"event", e.Type(),
				"error", err)
		}
	}
}

// applyNode updates every reward of node. Failing rewards are logged,
// reported as events and skipped.
func (s *service) applyNode(
	ctx context.Context, player core.Entity, cat *Category, node *Node, count int, pending *[]events.Event,
) int {
	failed := 0
	for _, def := range node.Rewards {
		err := isolate(func() error {
			return def.Reward.Update(reward.UpdateContext{Player: player, Count: count})
		})
		if err == nil {
			continue
		}
		failed++
		slog.ErrorContext(ctx, "reward update failed",
			"player_id", player.GetID(),
			"category", cat.ID.String(),
			"node", node.ID.String(),
			"reward", def.Type.String(),
			"count", count,
			"error", err)
		*pending = append(*pending, notify.NewEvent(notify.EventBehaviorFailed, player, map[string]any{
			notify.KeyCategory: cat.ID.String(),
			notify.KeyNode:     node.ID.String(),
			notify.KeyError:    err.Error(),
		}))
	}
	return failed
}

func (s *service) setNode(
	ctx context.Context, player core.Entity, categoryID, nodeID identifier.Identifier, count int, eventType string,
) (*progress.Progress, int, error) {
	var pending []events.Event
	defer func() { s.publish(ctx, pending) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := s.category(categoryID)
	if err != nil {
		return nil, 0, err
	}
	node, ok := cat.Node(nodeID)
	if !ok {
		return nil, 0, errors.NotFoundf("node %s not found in category %s", nodeID, categoryID)
	}

	p, err := s.load(ctx, player.GetID(), cat.ID)
	if err != nil {
		return nil, 0, err
	}

	failed := s.applyNode(ctx, player, cat, node, count, &pending)

	p.SetCount(node.ID.String(), count)
	saved, err := s.save(ctx, p)
	if err != nil {
		return nil, failed, err
	}

	slog.DebugContext(ctx, "node updated",
		"player_id", player.GetID(),
		"category", cat.ID.String(),
		"node", node.ID.String(),
		"count", count,
		"failed", failed)

	pending = append(pending, notify.NewEvent(eventType, player, map[string]any{
		notify.KeyCategory: cat.ID.String(),
		notify.KeyNode:     node.ID.String(),
		notify.KeyCount:    count,
	}))
	return saved, failed, nil
}

func (s *service) UpdateNode(ctx context.Context, input *UpdateNodeInput) (*UpdateNodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Count < 0 {
		return nil, errors.InvalidArgumentf("count must not be negative, got %d", input.Count)
	}

	p, failed, err := s.setNode(ctx, input.Player, input.Category, input.Node, input.Count, notify.EventNodeUpdated)
	if err != nil {
		return nil, err
	}
	return &UpdateNodeOutput{Progress: p, Failed: failed}, nil
}

func (s *service) ResetNode(ctx context.Context, input *ResetNodeInput) (*ResetNodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}

	p, failed, err := s.setNode(ctx, input.Player, input.Category, input.Node, 0, notify.EventNodeReset)
	if err != nil {
		return nil, err
	}
	return &ResetNodeOutput{Progress: p, Failed: failed}, nil
}

func (s *service) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}

	list, err := s.repo.ListByPlayerID(ctx, progress.ListByPlayerIDInput{PlayerID: input.Player.GetID()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list progress")
	}

	var pending []events.Event
	defer func() { s.publish(ctx, pending) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := &RefreshOutput{}
	for _, p := range list.Progress {
		id, err := identifier.Parse(p.Category)
		if err != nil {
			slog.WarnContext(ctx, "skipping progress with invalid category",
				"player_id", p.PlayerID,
				"category", p.Category)
			continue
		}
		cat, err := s.category(id)
		if err != nil {
			slog.DebugContext(ctx, "skipping progress of unavailable category",
				"player_id", p.PlayerID,
				"category", p.Category,
				"reason", err)
			continue
		}

		for _, node := range cat.Nodes() {
			count := p.Count(node.ID.String())
			if count > 0 {
				out.Nodes++
			}
			out.Failed += s.applyNode(ctx, input.Player, cat, node, count, &pending)
		}
	}

	slog.InfoContext(ctx, "refreshed player progress",
		"player_id", input.Player.GetID(),
		"categories", len(list.Progress),
		"nodes", out.Nodes,
		"failed", out.Failed)
	return out, nil
}

func (s *service) DisposeCategory(ctx context.Context, input *DisposeCategoryInput) (*DisposeCategoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	var pending []events.Event
	defer func() { s.publish(ctx, pending) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := s.category(input.Category)
	if err != nil {
		return nil, err
	}

	out := &DisposeCategoryOutput{}
	for _, player := range input.Players {
		if player == nil {
			continue
		}
		for _, node := range cat.Nodes() {
			for _, def := range node.Rewards {
				err := isolate(func() error {
					return def.Reward.Dispose(reward.DisposeContext{Player: player})
				})
				if err != nil {
					out.Failed++
					slog.ErrorContext(ctx, "reward dispose failed",
						"player_id", player.GetID(),
						"category", cat.ID.String(),
						"node", node.ID.String(),
						"reward", def.Type.String(),
						"error", err)
				}
			}
		}
		pending = append(pending, notify.NewEvent(notify.EventCategoryDisposed, player, map[string]any{
			notify.KeyCategory: cat.ID.String(),
		}))
	}

	for _, def := range cat.Sources() {
		err := isolate(func() error {
			return def.Source.Dispose(experience.DisposeContext{})
		})
		if err != nil {
			out.Failed++
			slog.ErrorContext(ctx, "experience source dispose failed",
				"category", cat.ID.String(),
				"source", def.Type.String(),
				"error", err)
		}
	}

	s.disposed[cat.ID] = true
	slog.InfoContext(ctx, "category disposed",
		"category", cat.ID.String(),
		"players", len(input.Players),
		"failed", out.Failed)
	return out, nil
}

func (s *service) GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDNil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := s.category(input.Category)
	if err != nil {
		return nil, err
	}
	p, err := s.load(ctx, input.PlayerID, cat.ID)
	if err != nil {
		return nil, err
	}
	return &GetProgressOutput{Progress: p}, nil
}

// storeFailed logs a progress load or save that failed during a
// multi-category operation. The category is skipped and the others proceed.
func (s *service) storeFailed(ctx context.Context, op string, player core.Entity, cat *Category, err error) {
	slog.ErrorContext(ctx, "failed to "+op+" progress",
		"player_id", player.GetID(),
		"category", cat.ID.String(),
		"error", err)
}

// award adds amount to a category's experience and queues the event. It
// is a no-op for amounts of zero or less.
func (s *service) award(
	ctx context.Context, player core.Entity, p *progress.Progress, cat *Category, amount int, source string,
	pending *[]events.Event,
) (Award, bool) {
	if amount <= 0 {
		return Award{}, false
	}
	p.Experience = experience.Add(p.Experience, amount)
	*pending = append(*pending, notify.NewEvent(notify.EventExperienceAwarded, player, map[string]any{
		notify.KeyCategory: cat.ID.String(),
		notify.KeyAmount:   amount,
		notify.KeySource:   source,
	}))
	slog.DebugContext(ctx, "experience awarded",
		"player_id", player.GetID(),
		"category", cat.ID.String(),
		"amount", amount,
		"source", source)
	return Award{Category: cat.ID, Amount: amount}, true
}

func (s *service) AwardItem(ctx context.Context, input *AwardItemInput) (*AwardItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Stack == nil {
		return nil, errors.InvalidArgument("stack is required")
	}

	out := &AwardItemOutput{}
	if _, ok := input.Stack.ExperienceComponent(); !ok || input.Stack.IsEmpty() {
		return out, nil
	}

	var pending []events.Event
	defer func() { s.publish(ctx, pending) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cat := range s.order {
		if s.disposed[cat.ID] {
			continue
		}
		sources := cat.ItemSources()
		if len(sources) == 0 {
			continue
		}

		amount := 0
		for _, src := range sources {
			err := isolate(func() error {
				amount = experience.Add(amount, src.Value(input.Player, input.Stack))
				return nil
			})
			if err != nil {
				slog.ErrorContext(ctx, "item experience source failed",
					"player_id", input.Player.GetID(),
					"category", cat.ID.String(),
					"error", err)
			}
		}

		if amount <= 0 {
			continue
		}

		p, err := s.load(ctx, input.Player.GetID(), cat.ID)
		if err != nil {
			s.storeFailed(ctx, "load", input.Player, cat, err)
			out.Failed++
			continue
		}
		var queued []events.Event
		a, _ := s.award(ctx, input.Player, p, cat, amount, SourceItem, &queued)
		if _, err := s.save(ctx, p); err != nil {
			s.storeFailed(ctx, "save", input.Player, cat, err)
			out.Failed++
			continue
		}
		pending = append(pending, queued...)
		out.Awards = append(out.Awards, a)
		out.Total += a.Amount
	}

	// The stack is consumed even when a category failed so a retry cannot
	// credit the others twice.
	input.Stack.StripExperience()
	return out, nil
}

func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Ticks < 0 {
		return nil, errors.InvalidArgumentf("ticks must not be negative, got %d", input.Ticks)
	}
	ticks := input.Ticks
	if ticks == 0 {
		ticks = 1
	}
	interval := s.timeCfg.IntervalTicks()

	var pending []events.Event
	defer func() { s.publish(ctx, pending) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := &TickOutput{}
	for _, cat := range s.order {
		if s.disposed[cat.ID] {
			continue
		}
		sources := cat.TimeSources()
		if len(sources) == 0 {
			continue
		}

		p, err := s.load(ctx, input.Player.GetID(), cat.ID)
		if err != nil {
			s.storeFailed(ctx, "load", input.Player, cat, err)
			out.Failed++
			continue
		}
		p.TicksSinceXP += ticks
		fires := p.TicksSinceXP / interval
		p.TicksSinceXP %= interval

		amount := 0
		if fires > 0 {
			for _, src := range sources {
				err := isolate(func() error {
					amount = experience.Add(amount, src.Value(input.Player, int(fires*interval), s.timeCfg.XPAmount))
					return nil
				})
				if err != nil {
					slog.ErrorContext(ctx, "time experience source failed",
						"player_id", input.Player.GetID(),
						"category", cat.ID.String(),
						"error", err)
				}
			}
		}

		var queued []events.Event
		a, awarded := s.award(ctx, input.Player, p, cat, amount, SourceTime, &queued)
		if _, err := s.save(ctx, p); err != nil {
			s.storeFailed(ctx, "save", input.Player, cat, err)
			out.Failed++
			continue
		}
		pending = append(pending, queued...)
		if awarded {
			out.Awards = append(out.Awards, a)
			out.Total += a.Amount
		}
	}
	return out, nil
}

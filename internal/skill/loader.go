package skill

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/lamali292/one-piece-api/internal/config"
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/experience"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
	"github.com/lamali292/one-piece-api/internal/reward"
)

// LoaderConfig contains the values needed to create a Loader.
type LoaderConfig struct {
	Rewards    *reward.Registry
	Experience *experience.Registry
	// Policy decides whether a failing category fails the load or is
	// skipped with a warning. Defaults to strict.
	Policy config.Policy
}

// Validate validates the LoaderConfig.
func (cfg *LoaderConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Rewards == nil {
		vb.RequiredField("rewards")
	}
	if cfg.Experience == nil {
		vb.RequiredField("experience")
	}
	if cfg.Policy != "" {
		errors.ValidateEnum("policy", string(cfg.Policy), []string{string(config.PolicyStrict), string(config.PolicyWarn)}, vb)
	}
	return vb.Build()
}

// Loader parses categories out of a data pack.
type Loader struct {
	rewards    *reward.Registry
	experience *experience.Registry
	policy     config.Policy
}

// NewLoader creates a Loader.
func NewLoader(cfg *LoaderConfig) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	policy := cfg.Policy
	if policy == "" {
		policy = config.PolicyStrict
	}
	return &Loader{
		rewards:    cfg.Rewards,
		experience: cfg.Experience,
		policy:     policy,
	}, nil
}

// Failure is a category that could not be loaded.
type Failure struct {
	File    string
	ID      identifier.Identifier
	Problem problem.Problem
}

func (f Failure) String() string {
	if f.ID.IsZero() {
		return fmt.Sprintf("%s: %s", f.File, f.Problem)
	}
	return fmt.Sprintf("%s (%s): %s", f.ID, f.File, f.Problem)
}

// LoadOutput is the result of Load.
type LoadOutput struct {
	Categories []*Category
	Failures   []Failure
	Warnings   []string
}

// CategoryID derives a category id from a data pack path:
// "<namespace>/<path>.json" or, at the root, "<path>.json" in the mod
// namespace.
func CategoryID(name string) (identifier.Identifier, error) {
	name = strings.TrimSuffix(name, path.Ext(name))
	if ns, p, found := strings.Cut(name, "/"); found {
		return identifier.New(ns, p)
	}
	return identifier.New(identifier.ModNamespace, name)
}

func isCategoryFile(name string) bool {
	switch path.Ext(name) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Load parses every category file in fsys. Every problem of a category is
// reported together. Under the strict policy any failure also makes Load
// return an error; the output is returned either way so callers can list
// what went wrong.
func (l *Loader) Load(ctx context.Context, fsys fs.FS) (*LoadOutput, error) {
	out := &LoadOutput{}
	warnings := &jsonvalue.Warnings{}
	seen := make(map[identifier.Identifier]string)

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isCategoryFile(name) {
			return nil
		}

		id, err := CategoryID(name)
		if err != nil {
			out.Failures = append(out.Failures, Failure{File: name, Problem: problem.Newf("Invalid category id: %v", err)})
			return nil
		}
		if prev, dup := seen[id]; dup {
			out.Failures = append(out.Failures, Failure{
				File:    name,
				ID:      id,
				Problem: problem.Newf("Duplicate category `%s`, already defined in %s", id, prev),
			})
			return nil
		}
		seen[id] = name

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}

		cat := result.AndThen(decode(name, data), func(e jsonvalue.Element) result.Result[*Category] {
			return l.ParseCategory(id, e, warnings)
		})
		if p, failed := cat.Problem(); failed {
			slog.WarnContext(ctx, "category failed to load",
				"category", id.String(),
				"file", name,
				"problems", len(p.Leaves()))
			out.Failures = append(out.Failures, Failure{File: name, ID: id, Problem: p})
			return nil
		}

		c, _ := cat.Get()
		slog.DebugContext(ctx, "loaded category",
			"category", id.String(),
			"nodes", len(c.Nodes()),
			"sources", len(c.Sources()))
		out.Categories = append(out.Categories, c)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read data pack")
	}

	out.Warnings = warnings.List()
	if len(out.Failures) == 0 {
		return out, nil
	}

	if l.policy == config.PolicyStrict {
		messages := make([]string, len(out.Failures))
		for i, f := range out.Failures {
			messages[i] = f.String()
		}
		return out, errors.InvalidArgumentf("%d categories failed to load", len(out.Failures)).
			WithMeta("problems", messages)
	}

	for _, f := range out.Failures {
		out.Warnings = append(out.Warnings, "Skipped category "+f.String())
	}
	return out, nil
}

func decode(name string, data []byte) result.Result[jsonvalue.Element] {
	if path.Ext(name) == ".json" {
		return jsonvalue.Parse(data)
	}
	raw, err := yamlToJSON(data)
	if err != nil {
		return result.Failure[jsonvalue.Element](problem.Newf("Invalid YAML: %v", err))
	}
	return jsonvalue.Parse(raw)
}

// ParseCategory parses a category document.
func (l *Loader) ParseCategory(id identifier.Identifier, e jsonvalue.Element, warnings *jsonvalue.Warnings) result.Result[*Category] {
	return result.AndThen(e.AsObject(), func(obj jsonvalue.Object) result.Result[*Category] {
		return jsonvalue.NoUnused(obj, func(o jsonvalue.Object) result.Result[*Category] {
			var c problem.Collector

			nodes, _ := result.Track(result.AndThen(result.AndThen(o.Get("nodes"), jsonvalue.Element.AsObject),
				func(nodes jsonvalue.Object) result.Result[[]*Node] {
					return l.parseNodes(nodes, warnings)
				}), &c)

			var sources []experience.Definition
			if exp, ok := o.Optional("experience"); ok {
				sources, _ = result.Track(l.parseExperience(exp, warnings), &c)
			}

			if p, failed := c.Problem(); failed {
				return result.Failure[*Category](p)
			}
			return result.Success(NewCategory(id, nodes, sources))
		})
	})
}

func (l *Loader) parseNodes(obj jsonvalue.Object, warnings *jsonvalue.Warnings) result.Result[[]*Node] {
	members := obj.Members()
	results := make([]result.Result[*Node], len(members))
	for i, m := range members {
		results[i] = l.parseNode(m, warnings)
	}
	return result.Collect(results)
}

func (l *Loader) parseNode(m jsonvalue.Member, warnings *jsonvalue.Warnings) result.Result[*Node] {
	var c problem.Collector

	id, err := identifier.Parse(m.Key)
	if err != nil {
		c.Add(problem.Atf(m.Value.Path(), "Invalid node id `%s`", m.Key))
	}

	rewards, _ := result.Track(result.AndThen(m.Value.AsObject(), func(obj jsonvalue.Object) result.Result[[]reward.Definition] {
		return jsonvalue.NoUnused(obj, func(o jsonvalue.Object) result.Result[[]reward.Definition] {
			return result.AndThen(result.AndThen(o.Get("rewards"), jsonvalue.Element.AsArray),
				func(arr jsonvalue.Array) result.Result[[]reward.Definition] {
					return jsonvalue.ParseEach(arr, func(e jsonvalue.Element) result.Result[reward.Definition] {
						return l.rewards.Parse(e, warnings)
					})
				})
		})
	}), &c)

	if p, failed := c.Problem(); failed {
		return result.Failure[*Node](p)
	}
	return result.Success(&Node{ID: id, Rewards: rewards})
}

func (l *Loader) parseExperience(e jsonvalue.Element, warnings *jsonvalue.Warnings) result.Result[[]experience.Definition] {
	return result.AndThen(e.AsObject(), func(obj jsonvalue.Object) result.Result[[]experience.Definition] {
		return jsonvalue.NoUnused(obj, func(o jsonvalue.Object) result.Result[[]experience.Definition] {
			return result.AndThen(result.AndThen(o.Get("sources"), jsonvalue.Element.AsArray),
				func(arr jsonvalue.Array) result.Result[[]experience.Definition] {
					return jsonvalue.ParseEach(arr, func(e jsonvalue.Element) result.Result[experience.Definition] {
						return l.experience.Parse(e, warnings)
					})
				})
		})
	})
}

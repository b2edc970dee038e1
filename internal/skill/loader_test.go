package skill_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/lamali292/one-piece-api/internal/config"
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/experience"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/pkg/idgen"
	"github.com/lamali292/one-piece-api/internal/reward"
	"github.com/lamali292/one-piece-api/internal/skill"
	"github.com/lamali292/one-piece-api/internal/testutils"
)

type LoaderTestSuite struct {
	suite.Suite
	ctx        context.Context
	registries *skill.Registries
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) SetupTest() {
	s.ctx = context.Background()

	var err error
	s.registries, err = skill.NewRegistries(&skill.RegistriesConfig{ModifierIDs: idgen.NewSequential("modifier")})
	s.Require().NoError(err)
}

func (s *LoaderTestSuite) newLoader(policy config.Policy) *skill.Loader {
	loader, err := skill.NewLoader(&skill.LoaderConfig{
		Rewards:    s.registries.Rewards,
		Experience: s.registries.Experience,
		Policy:     policy,
	})
	s.Require().NoError(err)
	return loader
}

func (s *LoaderTestSuite) TestLoadJSONCategory() {
	out, err := s.newLoader(config.PolicyStrict).Load(s.ctx, testutils.CategoryFS(map[string]string{
		"swordsman.json": testutils.SwordsmanCategory,
	}))
	s.Require().NoError(err)
	s.Require().Len(out.Categories, 1)
	s.Empty(out.Failures)

	cat := out.Categories[0]
	s.Equal(identifier.Mod("swordsman"), cat.ID)
	s.Equal(3, cat.RewardCount())
	s.Len(cat.ItemSources(), 1)
	s.Len(cat.TimeSources(), 1)

	nodes := cat.Nodes()
	s.Require().Len(nodes, 3)
	s.Equal(identifier.Mod("tough_body"), nodes[0].ID)
	s.Equal(identifier.Mod("sea_legs"), nodes[1].ID)
	s.Equal(identifier.Mod("three_swords"), nodes[2].ID)

	s.Equal(reward.AttributeID, nodes[0].Rewards[0].Type)
	s.Equal(reward.PassiveAbilityID, nodes[1].Rewards[0].Type)
	s.Equal(reward.SpellContainerID, nodes[2].Rewards[0].Type)
	s.Equal(experience.ItemID, cat.Sources()[0].Type)
	s.Equal(experience.TimeID, cat.Sources()[1].Type)

	_, ok := cat.Node(identifier.Mod("missing"))
	s.False(ok)
}

func (s *LoaderTestSuite) TestLoadYAMLCategory() {
	out, err := s.newLoader(config.PolicyStrict).Load(s.ctx, testutils.CategoryFS(map[string]string{
		"one_piece_api/sniper.yaml": testutils.SniperCategory,
	}))
	s.Require().NoError(err)
	s.Require().Len(out.Categories, 1)

	cat := out.Categories[0]
	s.Equal(identifier.Mod("sniper"), cat.ID)
	s.Require().Len(cat.Nodes(), 1)
	s.Empty(cat.Sources())

	attr, ok := cat.Nodes()[0].Rewards[0].Reward.(*reward.AttributeReward)
	s.Require().True(ok)
	s.Equal(identifier.MustParse("minecraft:generic.luck"), attr.Attribute)
	s.Equal(1.0, attr.Value)
}

func (s *LoaderTestSuite) TestIgnoresOtherFiles() {
	out, err := s.newLoader(config.PolicyStrict).Load(s.ctx, testutils.CategoryFS(map[string]string{
		"swordsman.json": testutils.SwordsmanCategory,
		"README.md":      "# pack",
	}))
	s.Require().NoError(err)
	s.Len(out.Categories, 1)
}

func (s *LoaderTestSuite) TestStrictPolicyReportsEveryProblem() {
	out, err := s.newLoader(config.PolicyStrict).Load(s.ctx, testutils.CategoryFS(map[string]string{
		"swordsman.json": testutils.SwordsmanCategory,
		"broken.json":    testutils.BrokenCategory,
	}))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Require().NotNil(out)
	s.Len(out.Categories, 1)
	s.Require().Len(out.Failures, 1)

	failure := out.Failures[0]
	s.Equal(identifier.Mod("broken"), failure.ID)
	s.Equal("broken.json", failure.File)
	// value, operation and the unknown reward type are reported together
	s.GreaterOrEqual(len(failure.Problem.Leaves()), 3)
	s.True(failure.Problem.Contains("one_piece_api:unknown"))
}

func (s *LoaderTestSuite) TestWarnPolicySkipsCategory() {
	out, err := s.newLoader(config.PolicyWarn).Load(s.ctx, testutils.CategoryFS(map[string]string{
		"swordsman.json": testutils.SwordsmanCategory,
		"broken.json":    testutils.BrokenCategory,
	}))
	s.Require().NoError(err)
	s.Len(out.Categories, 1)
	s.Len(out.Failures, 1)

	found := false
	for _, w := range out.Warnings {
		if len(w) > 16 && w[:16] == "Skipped category" {
			found = true
		}
	}
	s.True(found, "warnings: %v", out.Warnings)
}

func (s *LoaderTestSuite) TestDuplicateCategory() {
	out, err := s.newLoader(config.PolicyWarn).Load(s.ctx, testutils.CategoryFS(map[string]string{
		"swordsman.json":               testutils.SwordsmanCategory,
		"one_piece_api/swordsman.json": testutils.SwordsmanCategory,
	}))
	s.Require().NoError(err)
	s.Len(out.Categories, 1)
	s.Require().Len(out.Failures, 1)
	s.True(out.Failures[0].Problem.Contains("Duplicate category"))
}

func (s *LoaderTestSuite) TestMalformedDocuments() {
	testCases := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{
			name:     "invalid json",
			file:     "bad.json",
			content:  `{"nodes":`,
			contains: "",
		},
		{
			name:     "invalid yaml",
			file:     "bad.yaml",
			content:  "nodes: [unclosed",
			contains: "Invalid YAML",
		},
		{
			name:     "recursive yaml alias",
			file:     "one_piece_api/loop.yaml",
			content:  "nodes: &a\n  x: *a\n",
			contains: "recursive alias",
		},
		{
			name:     "yaml alias fan-out",
			file:     "laughs.yaml",
			content:  yamlFanOut(8),
			contains: "expands to more than",
		},
		{
			name:     "missing nodes",
			file:     "empty.json",
			content:  `{}`,
			contains: "nodes",
		},
		{
			name:     "unknown top level key",
			file:     "extra.json",
			content:  `{"nodes": {}, "colour": "red"}`,
			contains: "colour",
		},
		{
			name:     "invalid node id",
			file:     "node.json",
			content:  `{"nodes": {"Bad Node": {"rewards": []}}}`,
			contains: "Invalid node id",
		},
		{
			name:     "duplicate node id",
			file:     "twice.json",
			content:  `{"nodes": {"a:b": {"rewards": []}, "a:b": {"rewards": []}}}`,
			contains: "Duplicate field `a:b`",
		},
		{
			name:     "invalid category path",
			file:     "Bad Name.json",
			content:  `{"nodes": {}}`,
			contains: "Invalid category id",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.newLoader(config.PolicyStrict).Load(s.ctx, fstest.MapFS{
				tc.file: &fstest.MapFile{Data: []byte(tc.content)},
			})
			s.Require().Error(err)
			s.Require().Len(out.Failures, 1)
			if tc.contains != "" {
				s.True(out.Failures[0].Problem.Contains(tc.contains), "problem: %v", out.Failures[0].Problem)
			}
		})
	}
}

func (s *LoaderTestSuite) TestCategoryID() {
	testCases := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "swordsman.json", want: "one_piece_api:swordsman"},
		{path: "pirates/navigator.yml", want: "pirates:navigator"},
		{path: "pirates/crew/cook.yaml", want: "pirates:crew/cook"},
		{path: "Bad/path.json", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.path, func() {
			id, err := skill.CategoryID(tc.path)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, id.String())
		})
	}
}

func (s *LoaderTestSuite) TestConfigValidation() {
	_, err := skill.NewLoader(&skill.LoaderConfig{})
	s.Error(err)

	_, err = skill.NewLoader(&skill.LoaderConfig{
		Rewards:    s.registries.Rewards,
		Experience: s.registries.Experience,
		Policy:     "lenient",
	})
	s.Error(err)
}

// yamlFanOut builds a document where each level references the previous one
// ten times, so the last level expands to 10^(levels+1) scalars.
func yamlFanOut(levels int) string {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		fmt.Fprintf(&b, "l%d: &l%d [", i, i)
		for j := 0; j < 10; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "*l%d", i-1)
		}
		b.WriteString("]\n")
	}
	fmt.Fprintf(&b, "nodes: *l%d\n", levels)
	return b.String()
}

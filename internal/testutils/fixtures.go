package testutils

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/lamali292/one-piece-api/internal/entities"
	"github.com/lamali292/one-piece-api/internal/entities/ability"
)

const (
	// TestPlayerID is the default player id for test fixtures
	TestPlayerID = "player-test-001"

	// SwordsmanCategory is a category with rewards of every built-in type and
	// both experience sources.
	SwordsmanCategory = `{
  "nodes": {
    "one_piece_api:tough_body": {
      "rewards": [
        {"type": "one_piece_api:attribute", "data": {"attribute": "minecraft:generic.max_health", "value": 4.0, "operation": "addition"}}
      ]
    },
    "one_piece_api:sea_legs": {
      "rewards": [
        {"type": "one_piece_api:passive_ability", "data": {"abilities": ["one_piece_api:enhanced_swimming", "one_piece_api:aquatic_mastery"]}}
      ]
    },
    "one_piece_api:three_swords": {
      "rewards": [
        {"type": "one_piece_api:spell", "data": {"containers": [
          {"content": "MAGIC", "spell_ids": ["one_piece_api:oni_giri"]},
          {"content": "MAGIC", "max_spell_count": 2, "spell_ids": ["one_piece_api:oni_giri", "one_piece_api:tatsu_maki"]}
        ]}}
      ]
    }
  },
  "experience": {
    "sources": [
      {"type": "one_piece_api:item", "data": {"experience": "get_xp() * get_count()"}},
      {"type": "one_piece_api:time", "data": {
        "variables": {"hours": "get_ticks() / 72000"},
        "experience": "hours * get_base_xp()"
      }}
    ]
  }
}`

	// SniperCategory is a small YAML category.
	SniperCategory = `nodes:
  one_piece_api:keen_eye:
    rewards:
      - type: one_piece_api:attribute
        data:
          attribute: generic.luck
          value: 1
          operation: addition
`

	// BrokenCategory fails to parse in several places at once.
	BrokenCategory = `{
  "nodes": {
    "one_piece_api:bad": {
      "rewards": [
        {"type": "one_piece_api:attribute", "data": {"attribute": "generic.armor", "value": "x", "operation": "add"}},
        {"type": "one_piece_api:unknown", "data": {}}
      ]
    }
  }
}`
)

// CategoryFS returns a data pack with the given category files.
func CategoryFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

// NewTestPlayer creates a player whose abilities resolve against the
// built-in passive abilities.
func NewTestPlayer(t *testing.T, id string) *entities.Player {
	t.Helper()

	abilities := ability.NewRegistry()
	require.NoError(t, ability.RegisterBuiltins(abilities))
	abilities.Freeze()

	player, err := entities.NewPlayer(&entities.PlayerConfig{ID: id, Abilities: abilities})
	require.NoError(t, err)
	return player
}

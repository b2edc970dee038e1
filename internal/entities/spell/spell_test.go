package spell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lamali292/one-piece-api/internal/entities/spell"
)

func TestHost(t *testing.T) {
	host := spell.NewHost()
	fire := spell.Container{Content: "MAGIC", SpellIDs: []string{"one_piece_api:fire_fist"}}

	host.Put("one_piece_api:fire_fist", fire)
	host.Put("one_piece_api:gum_gum_pistol", spell.Container{SpellIDs: []string{"one_piece_api:gum_gum_pistol"}})
	assert.Equal(t, []string{"one_piece_api:fire_fist", "one_piece_api:gum_gum_pistol"}, host.Keys())

	got, ok := host.Get("one_piece_api:fire_fist")
	assert.True(t, ok)
	assert.True(t, got.Equal(fire))

	host.Remove("one_piece_api:fire_fist")
	host.Remove("one_piece_api:fire_fist")
	assert.Equal(t, 1, host.Len())

	assert.False(t, host.Dirty())
	host.MarkDirty()
	assert.True(t, host.Dirty())
	host.ClearDirty()
	assert.False(t, host.Dirty())
}

func TestContainerEqual(t *testing.T) {
	a := spell.Container{Pool: "fire", SpellIDs: []string{"a:b", "a:c"}}
	b := spell.Container{Pool: "fire", SpellIDs: []string{"a:b", "a:c"}}
	c := spell.Container{Pool: "fire", SpellIDs: []string{"a:b"}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

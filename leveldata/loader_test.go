package leveldata

import (
	"testing"

	"github.com/automoto/hanapop/assets"
	"github.com/automoto/hanapop/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(assets.LevelFS, assets.ArenaPath)
	require.NoError(t, err)

	assert.Equal(t, 768, arena.Width)
	assert.Equal(t, 768, arena.Height)

	// Left column, right column, bottom row: 12+12+10 unique tiles.
	assert.Len(t, arena.Walls, 34)
	assert.Contains(t, arena.Walls, gamemath.NewRect(0, 0, 64, 64))
	assert.Contains(t, arena.Walls, gamemath.NewRect(704, 0, 64, 64))
	assert.Contains(t, arena.Walls, gamemath.NewRect(64, 704, 64, 64))

	// No tile in the playable interior.
	assert.NotContains(t, arena.Walls, gamemath.NewRect(64, 64, 64, 64))

	assert.Equal(t, gamemath.Vec2{X: 65, Y: 640}, arena.Spawn)
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(assets.LevelFS, "levels/nope.tmx")
	assert.Error(t, err)
}

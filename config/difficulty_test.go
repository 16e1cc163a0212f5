package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTiers(t *testing.T) {
	tiers, err := LoadTiers()
	require.NoError(t, err)
	require.Len(t, tiers, int(DifficultyCount))

	normal := tiers[DifficultyNormal]
	assert.Equal(t, 5, normal.ComboMin)
	assert.Equal(t, 5, normal.LifePoints)
	assert.Equal(t, 300.0, normal.BallVelocity)
	assert.Equal(t, 10, normal.SugoiCombo)
	assert.Equal(t, 500.0, normal.PlayerSpeed)
	assert.Equal(t, 25.0, normal.AffinityChangeSec)

	hard := tiers[DifficultyHard]
	assert.Equal(t, 10, hard.ComboMin)
	assert.Equal(t, 3, hard.LifePoints)
	assert.Equal(t, 400.0, hard.BallVelocity)

	japanese := tiers[DifficultyJapanese]
	assert.Equal(t, 1, japanese.LifePoints)
	assert.Equal(t, 50, japanese.SugoiCombo)
}

func TestTierDerivedValues(t *testing.T) {
	tier := &Tier{BallVelocity: 300, BallsIntervalMs: 750, ShootIntervalMs: 250}

	assert.Equal(t, -300.0, tier.SakuraVelocity())
	assert.Equal(t, 0.75, tier.BallsInterval())
	assert.Equal(t, 0.25, tier.ShootInterval())
}

func TestDifficultyString(t *testing.T) {
	assert.Equal(t, "easy", DifficultyEasy.String())
	assert.Equal(t, "normal", DifficultyNormal.String())
	assert.Equal(t, "hard", DifficultyHard.String())
	assert.Equal(t, "japanese", DifficultyJapanese.String())
}

func TestAffinityCycleStartsRed(t *testing.T) {
	require.Len(t, AffinityCycle, 4)
	assert.Equal(t, Red, AffinityCycle[0])
}

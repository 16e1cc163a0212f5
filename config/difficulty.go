package config

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Difficulty selects one of the four gameplay tiers.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyJapanese

	DifficultyCount
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	case DifficultyJapanese:
		return "japanese"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Tier fixes every tunable for one difficulty. A Tier is built once at load
// and passed around by pointer; nothing mutates it after that.
type Tier struct {
	ComboMin          int     `toml:"combo_min"`
	LifePoints        int     `toml:"life_points"`
	BallVelocity      float64 `toml:"ball_velocity"`
	SugoiCombo        int     `toml:"sugoi_combo"`
	BallsIntervalMs   float64 `toml:"balls_interval_ms"`
	PlayerSpeed       float64 `toml:"player_speed"`
	ShootIntervalMs   float64 `toml:"shoot_interval_ms"`
	AffinityChangeSec float64 `toml:"affinity_change_sec"`
}

// SakuraVelocity is the vertical speed of a fired petal, opposite to the
// falling balls.
func (t *Tier) SakuraVelocity() float64 {
	return -t.BallVelocity
}

// BallsInterval returns the spawn interval in seconds.
func (t *Tier) BallsInterval() float64 {
	return t.BallsIntervalMs / 1000.0
}

// ShootInterval returns the shot cooldown in seconds.
func (t *Tier) ShootInterval() float64 {
	return t.ShootIntervalMs / 1000.0
}

//go:embed difficulties.toml
var difficultiesTOML []byte

type tierFile struct {
	Easy     Tier `toml:"easy"`
	Normal   Tier `toml:"normal"`
	Hard     Tier `toml:"hard"`
	Japanese Tier `toml:"japanese"`
}

// Tiers maps every difficulty to its tier constants.
type Tiers map[Difficulty]*Tier

// LoadTiers decodes the embedded difficulty table.
func LoadTiers() (Tiers, error) {
	var f tierFile
	if err := toml.Unmarshal(difficultiesTOML, &f); err != nil {
		return nil, fmt.Errorf("decode difficulties: %w", err)
	}

	tiers := Tiers{
		DifficultyEasy:     &f.Easy,
		DifficultyNormal:   &f.Normal,
		DifficultyHard:     &f.Hard,
		DifficultyJapanese: &f.Japanese,
	}

	for d, t := range tiers {
		if t.LifePoints <= 0 || t.BallVelocity <= 0 || t.BallsIntervalMs <= 0 {
			return nil, fmt.Errorf("tier %s: incomplete definition", d)
		}
	}
	return tiers, nil
}

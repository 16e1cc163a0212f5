package assets

import "embed"

//go:embed levels
var LevelFS embed.FS

// ArenaPath is the TMX map of the single play field.
const ArenaPath = "levels/arena.tmx"

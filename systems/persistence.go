package systems

import (
	"encoding/json"

	cfg "github.com/automoto/hanapop/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedData is what survives between runs: the best score per difficulty
// and the tier the player last picked.
type SavedData struct {
	BestScores map[string]int `json:"bestScores"`
	LastTier   int            `json:"lastTier"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store. A failure is logged and leaves the
// game running without persistence.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "hanapop",
	})
	if err != nil {
		zap.L().Warn("persistence unavailable", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadSave reads the saved data, returning an empty record when there is
// none or the store is unavailable.
func LoadSave() *SavedData {
	saved := &SavedData{BestScores: map[string]int{}}
	if gdataManager == nil {
		return saved
	}

	data, err := gdataManager.LoadItem("save")
	if err != nil || data == nil {
		return saved
	}
	if err := json.Unmarshal(data, saved); err != nil {
		zap.L().Warn("corrupt save discarded", zap.Error(err))
		return &SavedData{BestScores: map[string]int{}}
	}
	if saved.BestScores == nil {
		saved.BestScores = map[string]int{}
	}
	return saved
}

func SaveSave(saved *SavedData) {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("save", data); err != nil {
		zap.L().Warn("save failed", zap.Error(err))
	}
}

// RecordScore updates the best score for a difficulty if beaten and returns
// the best known score after the update.
func RecordScore(difficulty cfg.Difficulty, score int) int {
	saved := LoadSave()
	key := difficulty.String()
	if score > saved.BestScores[key] {
		saved.BestScores[key] = score
	}
	saved.LastTier = int(difficulty)
	SaveSave(saved)
	return saved.BestScores[key]
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelys/blockplan/app"
	"github.com/avelys/blockplan/config"
	"github.com/avelys/blockplan/core/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score and rank the configured item snapshot without allocating",
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

type scoredRow struct {
	ItemID      string             `json:"item_id"`
	TotalScore  float64            `json:"total_score"`
	Components  map[string]float64 `json:"components"`
	Modifiers   []string           `json:"modifiers,omitempty"`
	Attribution []string           `json:"attribution"`
	Actions     []scoring.Action   `json:"suggested_actions,omitempty"`
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	items, err := app.LoadItems(cfg.Input.ItemsPath)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	scorer := scoring.Scorer{Weights: cfg.Scoring.Weights, Thresholds: cfg.Scoring.Thresholds}
	now := time.Now().In(cfg.Window.Location())

	rows := make([]scoredRow, len(items))
	for i, it := range items {
		sc := scorer.Score(it, now)
		rows[i] = scoredRow{
			ItemID:      sc.ItemID,
			TotalScore:  sc.TotalScore,
			Components:  sc.Components,
			Modifiers:   sc.Modifiers,
			Attribution: sc.Attribution,
			Actions:     sc.Actions,
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalScore > rows[j].TotalScore })

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

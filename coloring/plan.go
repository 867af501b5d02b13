// Package coloring - restart plans from JSON configuration.
//
// PlanFromJSON loads a restart plan from a JSON document, decoding the
// loosely-typed JSON map through mapstructure so numeric fields arrive as
// the right Go kinds. Budgets and schedule tunables fall back to
// DefaultOptions when omitted.
//
// Example document:
//
//	{
//	  "engine": "localsearch",
//	  "workers": 4,
//	  "seeds": [1, 2, 3, 4],
//	  "steps": 300000,
//	  "pairings": [ [[0,1],[1,0]] ]
//	}
package coloring

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// planConfig mirrors the JSON document shape.
type planConfig struct {
	Engine   string    `mapstructure:"engine"`
	Workers  int       `mapstructure:"workers"`
	Seeds    []int64   `mapstructure:"seeds"`
	Pairings [][][]int `mapstructure:"pairings"`

	NodeBudget  int64   `mapstructure:"nodeBudget"`
	TimeLimitMS int64   `mapstructure:"timeLimitMs"`
	Steps       int64   `mapstructure:"steps"`
	InitialTemp float64 `mapstructure:"initialTemp"`
	Cooling     float64 `mapstructure:"cooling"`
	MinTemp     float64 `mapstructure:"minTemp"`
	ZeroProb    float64 `mapstructure:"zeroDeltaProb"`
	AcceptScale float64 `mapstructure:"acceptScale"`
	Seed        int64   `mapstructure:"seed"`
}

// PlanFromJSON reads path and builds a Plan. The returned plan is not yet
// validated against the engines; Run performs full validation.
func PlanFromJSON(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}

	var doc map[string]any
	if err = json.Unmarshal(raw, &doc); err != nil {
		return Plan{}, err
	}

	var cfg planConfig
	if err = mapstructure.Decode(doc, &cfg); err != nil {
		return Plan{}, err
	}

	return planFromConfig(cfg)
}

// planFromConfig maps the decoded document onto a Plan with defaults.
func planFromConfig(cfg planConfig) (Plan, error) {
	var engine Engine
	switch strings.ToLower(cfg.Engine) {
	case "backtracking", "backtrack":
		engine = Backtracking
	case "localsearch", "anneal", "annealing":
		engine = LocalSearch
	default:
		return Plan{}, ErrUnknownEngine
	}

	opts := DefaultOptions()
	opts.NodeBudget = cfg.NodeBudget
	opts.TimeLimit = time.Duration(cfg.TimeLimitMS) * time.Millisecond
	opts.Seed = cfg.Seed
	if cfg.Steps != 0 {
		opts.Steps = cfg.Steps
	}
	if cfg.InitialTemp != 0 {
		opts.InitialTemp = cfg.InitialTemp
	}
	if cfg.Cooling != 0 {
		opts.Cooling = cfg.Cooling
	}
	if cfg.MinTemp != 0 {
		opts.MinTemp = cfg.MinTemp
	}
	if cfg.ZeroProb != 0 {
		opts.ZeroDeltaProb = cfg.ZeroProb
	}
	if cfg.AcceptScale != 0 {
		opts.AcceptScale = cfg.AcceptScale
	}

	return Plan{
		Engine:   engine,
		Pairings: cfg.Pairings,
		Seeds:    cfg.Seeds,
		Workers:  cfg.Workers,
		Options:  opts,
	}, nil
}

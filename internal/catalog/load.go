package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document filenames expected inside a catalog data directory. The
// layout mirrors the assessment/plan/activity documents the app ships.
const (
	questionsFile  = "questions.json"
	resultsFile    = "results.json"
	plansFile      = "plans.json"
	activitiesFile = "activities.json"
)

type questionsDoc struct {
	Questions []Question `json:"questions"`
}

type resultsDoc struct {
	Scoring  ScoringTable   `json:"scoring"`
	Profiles []ProfileRange `json:"profiles"`
}

type activitiesDoc struct {
	Pool        []FallbackActivity    `json:"pool"`
	Inspiration []InspirationTemplate `json:"inspiration"`
}

// Load builds a validated Catalog. With an empty dir the compiled-in
// seed tables are used; otherwise every document is read from dir.
func Load(dir string) (*Catalog, error) {
	var c *Catalog
	if dir == "" {
		c = seedCatalog()
	} else {
		loaded, err := loadDir(dir)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	c.index()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadDir(dir string) (*Catalog, error) {
	var qd questionsDoc
	if err := readDoc(filepath.Join(dir, questionsFile), &qd); err != nil {
		return nil, err
	}

	var rd resultsDoc
	if err := readDoc(filepath.Join(dir, resultsFile), &rd); err != nil {
		return nil, err
	}

	var plans []PlanTemplate
	if err := readDoc(filepath.Join(dir, plansFile), &plans); err != nil {
		return nil, err
	}

	var ad activitiesDoc
	if err := readDoc(filepath.Join(dir, activitiesFile), &ad); err != nil {
		return nil, err
	}

	return &Catalog{
		Questions:    qd.Questions,
		Scoring:      rd.Scoring,
		Profiles:     rd.Profiles,
		Plans:        plans,
		FallbackPool: ad.Pool,
		Inspiration:  ad.Inspiration,
	}, nil
}

func readDoc(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog document: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

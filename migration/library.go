package migration

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	oxidecompat "github.com/oxidekit/go-oxidecompat"
)

// guideDoc is the YAML shape of one guide in a library document.
// Versions are strings here and parsed into semver values on load.
type guideDoc struct {
	From             string               `yaml:"from"`
	To               string               `yaml:"to"`
	Title            string               `yaml:"title"`
	Summary          string               `yaml:"summary"`
	EstimatedMinutes int                  `yaml:"estimated_minutes"`
	Prerequisites    []string             `yaml:"prerequisites"`
	Steps            []stepDoc            `yaml:"steps"`
	Verification     []string             `yaml:"verification"`
	Troubleshooting  []troubleshootingDoc `yaml:"troubleshooting"`
	Resources        []resourceDoc        `yaml:"resources"`
}

type stepDoc struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Actions     []string `yaml:"actions"`
	Code        *codeDoc `yaml:"code"`
	Warnings    []string `yaml:"warnings"`
	Optional    bool     `yaml:"optional"`
	Category    string   `yaml:"category"`
}

type codeDoc struct {
	Language string `yaml:"language"`
	After    string `yaml:"after"`
	Before   string `yaml:"before"`
}

type troubleshootingDoc struct {
	Problem  string   `yaml:"problem"`
	Solution string   `yaml:"solution"`
	Errors   []string `yaml:"errors"`
}

type resourceDoc struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

type libraryDoc struct {
	Guides []guideDoc `yaml:"guides"`
}

// LoadLibrary parses a YAML guide-library document into a populated
// Plan. The document is a list of guides under a top-level "guides"
// key; see the package example in testdata for the full shape. Parse
// failures wrap oxidecompat.ErrGuideParse.
func LoadLibrary(data []byte) (*Plan, error) {
	var doc libraryDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", oxidecompat.ErrGuideParse, err)
	}

	plan := NewPlan()
	for i, gd := range doc.Guides {
		guide, err := gd.toGuide()
		if err != nil {
			return nil, fmt.Errorf("%w: guide %d (%q): %v", oxidecompat.ErrGuideParse, i, gd.Title, err)
		}
		plan.AddGuide(guide)
	}
	return plan, nil
}

func (gd guideDoc) toGuide() (*Guide, error) {
	from, err := semver.NewVersion(gd.From)
	if err != nil {
		return nil, fmt.Errorf("invalid from version %q: %v", gd.From, err)
	}
	to, err := semver.NewVersion(gd.To)
	if err != nil {
		return nil, fmt.Errorf("invalid to version %q: %v", gd.To, err)
	}

	guide := NewGuide(from, to, gd.Title, gd.Summary)
	guide.EstimatedMinutes = gd.EstimatedMinutes

	for _, prereq := range gd.Prerequisites {
		guide.AddPrerequisite(prereq)
	}

	for _, sd := range gd.Steps {
		step := Step{
			Title:       sd.Title,
			Description: sd.Description,
			Actions:     sd.Actions,
			Warnings:    sd.Warnings,
			Optional:    sd.Optional,
			Category:    sd.Category,
		}
		if sd.Code != nil {
			step.CodeExample = &CodeExample{
				Language: sd.Code.Language,
				Code:     sd.Code.After,
				Before:   sd.Code.Before,
			}
		}
		guide.AddStep(step)
	}

	for _, check := range gd.Verification {
		guide.AddVerification(check)
	}
	for _, td := range gd.Troubleshooting {
		guide.AddTroubleshooting(TroubleshootingEntry{
			Problem:       td.Problem,
			Solution:      td.Solution,
			ErrorMessages: td.Errors,
		})
	}
	for _, rd := range gd.Resources {
		guide.AddResource(Resource{
			Title:       rd.Title,
			URL:         rd.URL,
			Description: rd.Description,
		})
	}

	return guide, nil
}

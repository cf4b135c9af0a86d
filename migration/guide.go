package migration

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Guide is a structured, renderable set of instructions for moving one
// component between two versions. All list fields are append-only and
// order-significant: rendering preserves the order in which entries
// were added.
type Guide struct {
	// FromVersion is the version the guide starts from.
	FromVersion *semver.Version `json:"from_version"`

	// ToVersion is the version the guide migrates to.
	ToVersion *semver.Version `json:"to_version"`

	// Title of the guide.
	Title string `json:"title"`

	// Summary is the overview text.
	Summary string `json:"summary"`

	// EstimatedMinutes is the estimated completion time. Zero means no
	// estimate was declared.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`

	// Prerequisites to satisfy before starting.
	Prerequisites []string `json:"prerequisites,omitempty"`

	// Steps are the migration steps, in execution order.
	Steps []Step `json:"steps"`

	// Verification lists post-migration checks.
	Verification []string `json:"verification,omitempty"`

	// Troubleshooting lists common problems and their solutions.
	Troubleshooting []TroubleshootingEntry `json:"troubleshooting,omitempty"`

	// Resources are additional links.
	Resources []Resource `json:"resources,omitempty"`
}

// NewGuide creates an empty guide between two versions.
func NewGuide(from, to *semver.Version, title, summary string) *Guide {
	return &Guide{
		FromVersion: from,
		ToVersion:   to,
		Title:       title,
		Summary:     summary,
	}
}

// WithTime sets the estimated completion time in minutes and returns
// the guide for chaining.
func (g *Guide) WithTime(minutes int) *Guide {
	g.EstimatedMinutes = minutes
	return g
}

// AddPrerequisite appends a prerequisite.
func (g *Guide) AddPrerequisite(prereq string) {
	g.Prerequisites = append(g.Prerequisites, prereq)
}

// AddStep appends a migration step.
func (g *Guide) AddStep(step Step) {
	g.Steps = append(g.Steps, step)
}

// AddVerification appends a post-migration check.
func (g *Guide) AddVerification(check string) {
	g.Verification = append(g.Verification, check)
}

// AddTroubleshooting appends a troubleshooting entry.
func (g *Guide) AddTroubleshooting(entry TroubleshootingEntry) {
	g.Troubleshooting = append(g.Troubleshooting, entry)
}

// AddResource appends a resource link.
func (g *Guide) AddResource(resource Resource) {
	g.Resources = append(g.Resources, resource)
}

// StepCount returns the number of migration steps.
func (g *Guide) StepCount() int {
	return len(g.Steps)
}

// CompletionPercentage converts a completed-step count into a
// percentage. A guide with no steps is vacuously 100% complete.
// Out-of-range counts are not clamped; callers own that invariant.
func (g *Guide) CompletionPercentage(completed int) float64 {
	if len(g.Steps) == 0 {
		return 100.0
	}
	return float64(completed) / float64(len(g.Steps)) * 100.0
}

// ToMarkdown renders the guide as a Markdown document. Rendering is
// pure and deterministic. Sections whose backing list is empty are
// omitted entirely, never rendered as empty headers.
func (g *Guide) ToMarkdown() string {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s\n\n", g.Title)
	fmt.Fprintf(&md, "**Migration:** %s -> %s\n\n", g.FromVersion, g.ToVersion)

	if g.EstimatedMinutes > 0 {
		fmt.Fprintf(&md, "**Estimated time:** %d minutes\n\n", g.EstimatedMinutes)
	}

	md.WriteString("## Overview\n\n")
	md.WriteString(g.Summary)
	md.WriteString("\n\n")

	if len(g.Prerequisites) > 0 {
		md.WriteString("## Prerequisites\n\n")
		for _, prereq := range g.Prerequisites {
			fmt.Fprintf(&md, "- [ ] %s\n", prereq)
		}
		md.WriteString("\n")
	}

	md.WriteString("## Migration Steps\n\n")
	for i, step := range g.Steps {
		step.render(&md, i+1)
	}

	if len(g.Verification) > 0 {
		md.WriteString("## Verification\n\n")
		md.WriteString("After completing the migration, verify:\n\n")
		for _, check := range g.Verification {
			fmt.Fprintf(&md, "- [ ] %s\n", check)
		}
		md.WriteString("\n")
	}

	if len(g.Troubleshooting) > 0 {
		md.WriteString("## Troubleshooting\n\n")
		for _, entry := range g.Troubleshooting {
			fmt.Fprintf(&md, "### %s\n\n", entry.Problem)
			fmt.Fprintf(&md, "**Solution:** %s\n\n", entry.Solution)
		}
	}

	if len(g.Resources) > 0 {
		md.WriteString("## Resources\n\n")
		for _, resource := range g.Resources {
			fmt.Fprintf(&md, "- [%s](%s)", resource.Title, resource.URL)
			if resource.Description != "" {
				fmt.Fprintf(&md, " - %s", resource.Description)
			}
			md.WriteString("\n")
		}
	}

	return md.String()
}

// Step is a single migration step.
type Step struct {
	// Title of the step.
	Title string `json:"title"`

	// Description explains the step in detail.
	Description string `json:"description,omitempty"`

	// Actions are the concrete items to carry out, in order.
	Actions []string `json:"actions,omitempty"`

	// CodeExample illustrates the change, if any.
	CodeExample *CodeExample `json:"code_example,omitempty"`

	// Warnings call out hazards for this step.
	Warnings []string `json:"warnings,omitempty"`

	// Optional steps may be skipped.
	Optional bool `json:"optional,omitempty"`

	// Category groups related steps, e.g. "api", "config",
	// "dependencies".
	Category string `json:"category,omitempty"`
}

// NewStep creates a step with the given title.
func NewStep(title string) Step {
	return Step{Title: title}
}

// WithDescription sets the step description.
func (s Step) WithDescription(desc string) Step {
	s.Description = desc
	return s
}

// WithExample sets the code example.
func (s Step) WithExample(example CodeExample) Step {
	s.CodeExample = &example
	return s
}

// WithCategory sets the step category.
func (s Step) WithCategory(category string) Step {
	s.Category = category
	return s
}

// AsOptional marks the step as skippable.
func (s Step) AsOptional() Step {
	s.Optional = true
	return s
}

// AddAction appends an action item.
func (s *Step) AddAction(action string) {
	s.Actions = append(s.Actions, action)
}

// AddWarning appends a warning.
func (s *Step) AddWarning(warning string) {
	s.Warnings = append(s.Warnings, warning)
}

// render writes the step's markdown subsection, numbered from 1.
func (s *Step) render(md *strings.Builder, number int) {
	fmt.Fprintf(md, "### Step %d: %s\n\n", number, s.Title)

	if s.Description != "" {
		md.WriteString(s.Description)
		md.WriteString("\n\n")
	}

	if len(s.Actions) > 0 {
		for _, action := range s.Actions {
			fmt.Fprintf(md, "- [ ] %s\n", action)
		}
		md.WriteString("\n")
	}

	if s.CodeExample != nil {
		s.CodeExample.render(md)
	}

	if len(s.Warnings) > 0 {
		md.WriteString("> **Warnings:**\n")
		for _, warning := range s.Warnings {
			fmt.Fprintf(md, "> - %s\n", warning)
		}
		md.WriteString("\n")
	}
}

// CodeExample illustrates a change with code. When Before is set the
// example renders as a Before/After comparison; otherwise a single
// fenced block.
type CodeExample struct {
	// Language tags the fenced code block, e.g. "rust", "toml".
	Language string `json:"language"`

	// Code is the new (or only) code.
	Code string `json:"code"`

	// Before is the prior code for comparison, if any.
	Before string `json:"before,omitempty"`
}

// RustExample creates a Rust code example.
func RustExample(code string) CodeExample {
	return CodeExample{Language: "rust", Code: code}
}

// TOMLExample creates a TOML code example.
func TOMLExample(code string) CodeExample {
	return CodeExample{Language: "toml", Code: code}
}

// WithBefore attaches prior code for a Before/After comparison.
func (e CodeExample) WithBefore(before string) CodeExample {
	e.Before = before
	return e
}

func (e *CodeExample) render(md *strings.Builder) {
	if e.Before != "" {
		md.WriteString("**Before:**\n\n")
		fmt.Fprintf(md, "```%s\n%s\n```\n\n", e.Language, e.Before)
		md.WriteString("**After:**\n\n")
		fmt.Fprintf(md, "```%s\n%s\n```\n\n", e.Language, e.Code)
		return
	}
	md.WriteString("**Example:**\n\n")
	fmt.Fprintf(md, "```%s\n%s\n```\n\n", e.Language, e.Code)
}

// TroubleshootingEntry pairs a known problem with its solution.
type TroubleshootingEntry struct {
	// Problem describes the symptom.
	Problem string `json:"problem"`

	// Solution describes the fix.
	Solution string `json:"solution"`

	// ErrorMessages lists related error output, for searchability.
	ErrorMessages []string `json:"error_messages,omitempty"`
}

// NewTroubleshooting creates an entry.
func NewTroubleshooting(problem, solution string) TroubleshootingEntry {
	return TroubleshootingEntry{Problem: problem, Solution: solution}
}

// WithError appends a related error message.
func (t TroubleshootingEntry) WithError(message string) TroubleshootingEntry {
	t.ErrorMessages = append(t.ErrorMessages, message)
	return t
}

// Resource is an external link.
type Resource struct {
	// Title of the resource.
	Title string `json:"title"`

	// URL of the resource.
	URL string `json:"url"`

	// Description is optional explanatory text.
	Description string `json:"description,omitempty"`
}

// NewResource creates a resource link.
func NewResource(title, url string) Resource {
	return Resource{Title: title, URL: url}
}

// WithDescription sets the resource description.
func (r Resource) WithDescription(desc string) Resource {
	r.Description = desc
	return r
}

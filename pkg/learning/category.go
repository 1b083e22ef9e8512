package learning

import "strings"

// Category classifies a learning entry and determines which note file it is
// appended to.
type Category string

const (
	CategoryBuild       Category = "build"
	CategoryTest        Category = "test"
	CategoryDeploy      Category = "deploy"
	CategoryDebug       Category = "debug"
	CategoryIntegration Category = "integration"
	CategoryPerformance Category = "performance"
	CategoryTooling     Category = "tooling"
	CategoryGeneral     Category = "general"
)

// categoryFiles is the fixed category-to-filename table. Every category owns
// exactly one note file; unknown categories are remapped to CategoryGeneral
// by ParseCategory, never to a new file.
var categoryFiles = map[Category]string{
	CategoryBuild:       "build_issues.md",
	CategoryTest:        "testing_issues.md",
	CategoryDeploy:      "deployment_issues.md",
	CategoryDebug:       "debugging_solutions.md",
	CategoryIntegration: "integration_issues.md",
	CategoryPerformance: "performance_solutions.md",
	CategoryTooling:     "tooling_issues.md",
	CategoryGeneral:     "general_learnings.md",
}

// Categories returns all supported categories in a stable order, for help
// text and prompts.
func Categories() []Category {
	return []Category{
		CategoryBuild,
		CategoryTest,
		CategoryDeploy,
		CategoryDebug,
		CategoryIntegration,
		CategoryPerformance,
		CategoryTooling,
		CategoryGeneral,
	}
}

// ParseCategory resolves a user-supplied category string. Matching is
// case-insensitive; anything unrecognized falls back to CategoryGeneral.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryFiles[c]; ok {
		return c
	}
	return CategoryGeneral
}

// Filename returns the note file name the category maps to.
func (c Category) Filename() string {
	if name, ok := categoryFiles[c]; ok {
		return name
	}
	return categoryFiles[CategoryGeneral]
}

// DisplayName returns the capitalized category name used in file headers.
func (c Category) DisplayName() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

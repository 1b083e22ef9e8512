package learning

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{name: "exact match", input: "build", want: CategoryBuild},
		{name: "uppercase", input: "DEBUG", want: CategoryDebug},
		{name: "mixed case with whitespace", input: "  Performance ", want: CategoryPerformance},
		{name: "unknown falls back to general", input: "oops", want: CategoryGeneral},
		{name: "empty falls back to general", input: "", want: CategoryGeneral},
		{name: "general", input: "general", want: CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCategory(tt.input); got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoryFilename(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryBuild, "build_issues.md"},
		{CategoryTest, "testing_issues.md"},
		{CategoryDeploy, "deployment_issues.md"},
		{CategoryDebug, "debugging_solutions.md"},
		{CategoryIntegration, "integration_issues.md"},
		{CategoryPerformance, "performance_solutions.md"},
		{CategoryTooling, "tooling_issues.md"},
		{CategoryGeneral, "general_learnings.md"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.Filename(); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}

	// A category value that never went through ParseCategory still maps to
	// the general file rather than inventing a new one.
	if got := Category("oops").Filename(); got != "general_learnings.md" {
		t.Errorf("unknown category Filename() = %q, want general_learnings.md", got)
	}
}

func TestCategoriesCoversMapping(t *testing.T) {
	cats := Categories()
	if len(cats) != len(categoryFiles) {
		t.Fatalf("Categories() has %d entries, mapping has %d", len(cats), len(categoryFiles))
	}
	seen := make(map[Category]bool)
	for _, c := range cats {
		if _, ok := categoryFiles[c]; !ok {
			t.Errorf("category %q missing from file mapping", c)
		}
		if seen[c] {
			t.Errorf("category %q listed twice", c)
		}
		seen[c] = true
	}
}

func TestDisplayName(t *testing.T) {
	if got := CategoryBuild.DisplayName(); got != "Build" {
		t.Errorf("DisplayName() = %q, want Build", got)
	}
	if got := Category("").DisplayName(); got != "" {
		t.Errorf("empty DisplayName() = %q, want empty", got)
	}
}

// Package capture implements the interactive capture form for
// mnemo-capture. The form walks the entry fields in order, reading one line
// at a time: single-line fields submit on enter, multi-line fields
// accumulate lines until an empty line ends the field.
package capture

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mnemosh/mnemo/pkg/learning"
)

// field identifies the form step currently being collected.
type field int

const (
	fieldMemoryDir field = iota
	fieldCategory
	fieldTitle
	fieldProblem
	fieldSolution
	fieldContext
	fieldDone
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Form is the bubbletea model for the interactive capture flow. After the
// program finishes (and Aborted is false), MemoryDir, Category and Entry
// hold the collected values.
type Form struct {
	input      textinput.Model
	field      field
	defaultDir string
	lines      []string
	aborted    bool

	MemoryDir string
	Category  learning.Category
	Entry     learning.Entry
}

// NewForm creates a capture form that falls back to defaultDir when the
// memory directory prompt is left blank.
func NewForm(defaultDir string) *Form {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return &Form{
		input:      ti,
		defaultDir: defaultDir,
	}
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			f.aborted = true
			return f, tea.Quit
		case tea.KeyEnter:
			f.submitLine(f.input.Value())
			f.input.SetValue("")
			if f.field == fieldDone {
				return f, tea.Quit
			}
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// submitLine consumes one entered line for the current field and advances
// the form when the field is complete.
func (f *Form) submitLine(line string) {
	switch f.field {
	case fieldMemoryDir:
		dir := strings.TrimSpace(line)
		if dir == "" {
			dir = f.defaultDir
		}
		f.MemoryDir = dir
		f.field = fieldCategory
	case fieldCategory:
		f.Category = learning.ParseCategory(line)
		f.field = fieldTitle
	case fieldTitle:
		f.Entry.Title = strings.TrimSpace(line)
		f.field = fieldProblem
	case fieldProblem:
		if f.endMultiline(line, &f.Entry.Problem) {
			f.field = fieldSolution
		}
	case fieldSolution:
		if f.endMultiline(line, &f.Entry.Solution) {
			f.field = fieldContext
		}
	case fieldContext:
		if f.endMultiline(line, &f.Entry.Context) {
			f.field = fieldDone
		}
	}
}

// endMultiline accumulates one line of a multi-line field. An empty line
// closes the field: the collected lines are joined into dst and the
// accumulator reset. Reports whether the field is complete.
func (f *Form) endMultiline(line string, dst *string) bool {
	if line != "" {
		f.lines = append(f.lines, line)
		return false
	}
	*dst = strings.Join(f.lines, "\n")
	f.lines = nil
	return true
}

// View implements tea.Model.
func (f *Form) View() string {
	if f.field == fieldDone || f.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("mnemo - learning capture") + "\n\n")

	switch f.field {
	case fieldMemoryDir:
		b.WriteString(promptStyle.Render("Memory directory") + "\n")
		b.WriteString(hintStyle.Render(fmt.Sprintf("Blank for default: %s", f.defaultDir)) + "\n")
	case fieldCategory:
		b.WriteString(promptStyle.Render("Category") + "\n")
		b.WriteString(hintStyle.Render("One of: "+categoryHint()+" (blank or unknown falls back to general)") + "\n")
	case fieldTitle:
		b.WriteString(promptStyle.Render("Short title") + "\n")
		b.WriteString(hintStyle.Render("e.g. 'Import error with local modules'") + "\n")
	case fieldProblem:
		b.WriteString(promptStyle.Render("Problem - what went wrong") + "\n")
		b.WriteString(multilineHint(len(f.lines)))
	case fieldSolution:
		b.WriteString(promptStyle.Render("Solution - what finally worked") + "\n")
		b.WriteString(multilineHint(len(f.lines)))
	case fieldContext:
		b.WriteString(promptStyle.Render("Context - when to apply this (optional)") + "\n")
		b.WriteString(multilineHint(len(f.lines)))
	}

	b.WriteString("\n" + f.input.View() + "\n")
	b.WriteString("\n" + hintStyle.Render("enter: submit line - esc: abort") + "\n")
	return b.String()
}

func multilineHint(collected int) string {
	if collected == 0 {
		return hintStyle.Render("Enter a blank line when done") + "\n"
	}
	return hintStyle.Render(fmt.Sprintf("%d line(s) collected - blank line ends the field", collected)) + "\n"
}

func categoryHint() string {
	names := make([]string, 0, len(learning.Categories()))
	for _, c := range learning.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// Aborted reports whether the user cancelled the form.
func (f *Form) Aborted() bool {
	return f.aborted
}

// Run executes the interactive form and returns it once the user has
// finished or aborted.
func Run(defaultDir string) (*Form, error) {
	program := tea.NewProgram(NewForm(defaultDir))
	model, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("capture: run form: %w", err)
	}
	form, ok := model.(*Form)
	if !ok {
		return nil, fmt.Errorf("capture: unexpected model type %T", model)
	}
	return form, nil
}

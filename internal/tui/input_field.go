package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptKind selects what a submitted prompt does.
type PromptKind int

const (
	PromptNone PromptKind = iota
	// PromptAddTab adds a tab labelled with the input to the current group.
	PromptAddTab
	// PromptJump navigates to the fragment typed in.
	PromptJump
)

// PromptSubmittedMsg is sent when the user submits a prompt.
type PromptSubmittedMsg struct {
	Kind  PromptKind
	Value string
}

var promptLabels = map[PromptKind]string{
	PromptAddTab: "New tab label",
	PromptJump:   "Fragment",
}

// InputField is a one-line prompt shown above the footer.
type InputField struct {
	input textinput.Model
	kind  PromptKind
	width int
}

// NewInputField creates a new, closed InputField.
func NewInputField() *InputField {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 60

	return &InputField{
		input: ti,
		width: 80,
	}
}

// SetWidth sets the width of the input field.
func (f *InputField) SetWidth(width int) {
	f.width = width
	f.input.Width = width - 4 // Account for prompt and padding
}

// Open shows the prompt for kind and focuses it.
func (f *InputField) Open(kind PromptKind) tea.Cmd {
	f.kind = kind
	f.input.Reset()
	f.input.Placeholder = promptLabels[kind] + " and press Enter, Esc to cancel"
	return f.input.Focus()
}

// Close hides the prompt and discards its input.
func (f *InputField) Close() {
	f.kind = PromptNone
	f.input.Reset()
	f.input.Blur()
}

// Active reports whether the prompt is shown.
func (f *InputField) Active() bool {
	return f.kind != PromptNone
}

// Kind returns the open prompt kind.
func (f *InputField) Kind() PromptKind {
	return f.kind
}

// Update handles messages for the input field.
func (f *InputField) Update(msg tea.Msg) (*InputField, tea.Cmd) {
	if !f.Active() {
		return f, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			f.Close()
			return f, nil
		case tea.KeyEnter:
			text := strings.TrimSpace(f.input.Value())
			kind := f.kind
			f.Close()
			if text == "" {
				return f, nil
			}
			return f, func() tea.Msg {
				return PromptSubmittedMsg{Kind: kind, Value: text}
			}
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the input field, or nothing when closed.
func (f *InputField) View() string {
	if !f.Active() {
		return ""
	}

	promptStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(f.width - 2)

	prompt := promptStyle.Render(promptLabels[f.kind] + "> ")
	return boxStyle.Render(prompt + f.input.View())
}

// Height returns the rendered height in lines.
func (f *InputField) Height() int {
	if !f.Active() {
		return 0
	}
	return 3
}

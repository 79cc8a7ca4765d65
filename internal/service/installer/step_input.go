package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep collects a single line of text. An empty answer falls back to the
// placeholder computed for the current state.
type InputStep struct {
	title       string
	input       textinput.Model
	secret      bool
	placeholder func(*InstallState) string
	skip        func(*InstallState) bool
	apply       func(*InstallState, string) error
	prepared    bool
	err         error
}

func NewInputStep(title string, apply func(*InstallState, string) error) *InputStep {
	return &InputStep{title: title, apply: apply}
}

func (s *InputStep) Secret() *InputStep {
	s.secret = true
	return s
}

func (s *InputStep) WithPlaceholder(fn func(*InstallState) string) *InputStep {
	s.placeholder = fn
	return s
}

func (s *InputStep) SkipWhen(fn func(*InstallState) bool) *InputStep {
	s.skip = fn
	return s
}

func (s *InputStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *InputStep) prepare(state *InstallState) {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	if s.placeholder != nil {
		ti.Placeholder = s.placeholder(state)
	}
	if s.secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	s.input = ti
	s.prepared = true
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.skip != nil && s.skip(state) {
		return nil, nil
	}
	if !s.prepared {
		s.prepare(state)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			val = s.input.Placeholder
		}
		if err := s.apply(state, val); err != nil {
			s.err = err
			return s, nil
		}
		return nil, nil
	}
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	if !s.prepared {
		s.prepare(state)
	}

	var b strings.Builder
	b.WriteString(s.title + ":\n\n" + s.input.View() + "\n\n")
	if s.err != nil {
		b.WriteString(errorStyle.Render(s.err.Error()) + "\n\n")
	}
	b.WriteString("(press enter to confirm)\n")
	return b.String()
}

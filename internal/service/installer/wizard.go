package installer

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/argand/internal/config"
	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/providers/llm"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// ErrInterrupted is returned when the user quits the wizard with ctrl+c.
var ErrInterrupted = errors.New("argand installation interrupted")

// Step represents a single step in the installation wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

type nextMsg struct{}

func next() tea.Msg { return nextMsg{} }

func getSteps(runtimePath string) []Step {
	provider := NewChoiceStep("Select your AI provider", llm.Providers, func(s *InstallState, v string) {
		s.Provider.Provider = v
	})

	apiKey := NewInputStep("Enter your API key", func(s *InstallState, v string) error {
		s.Provider.APIKey = v
		return nil
	}).Secret().SkipWhen(func(s *InstallState) bool { return !s.NeedsAPIKey() })

	baseURL := NewInputStep("Enter the provider base URL", func(s *InstallState, v string) error {
		if v == "" {
			return errors.New("a base URL is required for this provider")
		}
		s.Provider.BaseURL = v
		return nil
	}).WithPlaceholder(func(s *InstallState) string {
		if s.Provider.Provider == llm.ProviderOllama {
			return llm.DefaultOllamaURL
		}
		return ""
	}).SkipWhen(func(s *InstallState) bool { return !s.NeedsBaseURL() })

	model := NewInputStep("Enter the model name", func(s *InstallState, v string) error {
		if v == "" {
			return errors.New("a model name is required")
		}
		s.Provider.Model = v
		return nil
	}).WithPlaceholder((*InstallState).DefaultModel)

	storage := NewChoiceStep("Select the history storage", storageChoices, func(s *InstallState, v string) {
		s.App.StorageBackend = v
	})

	transport := NewChoiceStep("Select how you will reach "+core.AppName, transportChoices, (*InstallState).SetTransport)

	noTelegram := func(s *InstallState) bool { return !s.App.EnableTelegram }

	tgToken := NewInputStep("Enter your Telegram bot token", func(s *InstallState, v string) error {
		if v == "" {
			return errors.New("a bot token is required")
		}
		s.Telegram.Token = v
		return nil
	}).Secret().SkipWhen(noTelegram)

	tgOwner := NewInputStep("Enter your Telegram user ID (owner)", func(s *InstallState, v string) error {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user ID %q", v)
		}
		s.Telegram.OwnerID = id
		return nil
	}).SkipWhen(noTelegram)

	return []Step{
		provider,
		apiKey,
		baseURL,
		model,
		storage,
		transport,
		tgToken,
		tgOwner,
		NewSaveEnvStep(runtimePath),
	}
}

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
	width       int
	height      int
}

func initialModel(runtimePath string) model {
	return model{
		steps: getSteps(runtimePath),
		state: NewInstallState(),
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 {
		return tea.Batch(m.steps[0].Init(), next)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.currentStep >= len(m.steps) {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state, m.width, m.height)
	if nextStep == nil {
		m.currentStep++
		if m.currentStep >= len(m.steps) {
			return m, tea.Quit
		}
		// skipped steps complete on the next message
		return m, tea.Batch(m.steps[m.currentStep].Init(), next)
	}

	if nextStep != m.steps[m.currentStep] {
		m.steps[m.currentStep] = nextStep
	}
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Installation cancelled.\n"
	}
	if m.currentStep >= len(m.steps) {
		return "Configuration complete!\n"
	}
	return titleStyle.Render("Installing "+core.AppName) + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// RunWizard starts the TUI and writes the resulting .env into the runtime
// directory.
func RunWizard() (*InstallState, error) {
	p := tea.NewProgram(initialModel(config.GetRuntimePath()), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	if finalModel.quitting {
		return nil, ErrInterrupted
	}
	return finalModel.state, nil
}

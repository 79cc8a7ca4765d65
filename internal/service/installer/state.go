package installer

import (
	"strconv"
	"strings"

	"github.com/sandevgo/argand/internal/config"
	"github.com/sandevgo/argand/internal/providers/llm"
	"github.com/sandevgo/argand/pkg/env"
)

// Transport presets offered by the wizard.
const (
	TransportHTTP         = "HTTP"
	TransportHTTPTelegram = "HTTP + Telegram"
	TransportTelegram     = "Telegram"
	TransportCLI          = "CLI"
)

var transportChoices = []string{TransportHTTP, TransportHTTPTelegram, TransportTelegram, TransportCLI}

var storageChoices = []string{config.StorageSQLite, config.StorageBadger, config.StorageFile, config.StorageMemory}

var defaultModels = map[string]string{
	llm.ProviderGemini:     "gemini-2.5-flash",
	llm.ProviderOpenAI:     "gpt-4o-mini",
	llm.ProviderAnthropic:  "claude-3-5-haiku-latest",
	llm.ProviderOpenRouter: "google/gemini-2.5-flash",
	llm.ProviderOllama:     "qwen2.5:7b",
}

// InstallState collects the answers of the wizard as typed configs.
type InstallState struct {
	App      config.AppConfig
	Provider config.ProviderConfig
	Telegram config.TelegramConfig
}

func NewInstallState() *InstallState {
	return &InstallState{
		App: config.AppConfig{
			StorageBackend: config.StorageSQLite,
			EnableHTTP:     true,
		},
		Provider: config.ProviderConfig{
			Provider: llm.ProviderGemini,
		},
	}
}

func (s *InstallState) SetTransport(choice string) {
	s.App.EnableHTTP = choice == TransportHTTP || choice == TransportHTTPTelegram
	s.App.EnableTelegram = choice == TransportTelegram || choice == TransportHTTPTelegram
	s.App.EnableCLI = choice == TransportCLI
}

func (s *InstallState) NeedsAPIKey() bool {
	return s.Provider.Provider != llm.ProviderOllama
}

func (s *InstallState) NeedsBaseURL() bool {
	return s.Provider.Provider == llm.ProviderOllama || s.Provider.Provider == llm.ProviderCustom
}

func (s *InstallState) DefaultModel() string {
	return defaultModels[s.Provider.Provider]
}

// Env renders the collected answers as .env content. Transport flags are
// always written since false would otherwise be dropped as a zero value.
func (s *InstallState) Env() (string, error) {
	app := s.App
	// runtime path is where the file itself lives
	app.RuntimePath = ""
	app.EnableHTTP, app.EnableTelegram, app.EnableCLI = false, false, false

	var b strings.Builder
	out, err := env.MarshalEnv(&app, &s.Provider)
	if err != nil {
		return "", err
	}
	b.WriteString(out)

	if s.App.EnableTelegram {
		out, err = env.MarshalEnv(&s.Telegram)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}

	b.WriteString("ENABLE_HTTP=" + strconv.FormatBool(s.App.EnableHTTP) + "\n")
	b.WriteString("ENABLE_TELEGRAM=" + strconv.FormatBool(s.App.EnableTelegram) + "\n")
	b.WriteString("ENABLE_CLI=" + strconv.FormatBool(s.App.EnableCLI) + "\n")
	return b.String(), nil
}

package core

const (
	AppName          = "Argand"
	AppUserAgent     = "Argand-Solver/0.1"
	AppRepositoryURL = "https://github.com/sandevgo/argand"
	AppVersion       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

package core

import "time"

type ProviderConfig interface {
	GetProvider() string
	GetModel() string
	GetAPIKey() string
	GetBaseURL() string
}

type SolverConfig interface {
	GetMaxInputTokens() int
	GetTimeout() time.Duration
	GetMaxRetries() int
}

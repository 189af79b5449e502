// Package config loads and validates Cineco's YAML configuration.
package config

// Config is the root configuration for Cineco.
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	OpenAI  OpenAIConfig  `yaml:"openai,omitempty"`
	YouTube YouTubeConfig `yaml:"youtube,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Port           int    `yaml:"port,omitempty"`
	Bind           string `yaml:"bind,omitempty"` // "loopback" | "lan" | "custom"
	CustomBindHost string `yaml:"customBindHost,omitempty"`
	StaticDir      string `yaml:"staticDir,omitempty"` // directory served for non-API GETs
}

// OpenAIConfig configures the chat model provider.
// APIKey may be written as ${OPENAI_API_KEY} to read from the environment.
type OpenAIConfig struct {
	APIKey  string `yaml:"apiKey,omitempty"`
	Model   string `yaml:"model,omitempty"`
	BaseURL string `yaml:"baseUrl,omitempty"`
}

// YouTubeConfig configures the YouTube Data API.
type YouTubeConfig struct {
	APIKey string `yaml:"apiKey,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
}

package domain

import "time"

// Log levels accepted in settings.
const (
	LogLevelNone    = "none"
	LogLevelInfo    = "info"
	LogLevelVerbose = "verbose"
)

// Settings is the read-only configuration handed to every component at construction.
type Settings struct {
	UseOllama   bool             `mapstructure:"use_ollama"`
	SanityCheck bool             `mapstructure:"sanity_check"`
	LogLevel    string           `mapstructure:"log_level" validate:"oneof=none info verbose"`
	LogJSON     bool             `mapstructure:"log_json"`
	Ollama      OllamaSettings   `mapstructure:"ollama"`
	Hosted      HostedSettings   `mapstructure:"hosted"`
	Retry       RetrySettings    `mapstructure:"retry"`
	Docs        DocsSettings     `mapstructure:"docs"`
	Executor    ExecutorSettings `mapstructure:"executor"`
}

// OllamaSettings configures the self-hosted backend.
type OllamaSettings struct {
	Host       string `mapstructure:"host" validate:"required,url"`
	Model      string `mapstructure:"model" validate:"required"`
	MinVersion string `mapstructure:"min_version"`
}

// HostedSettings configures the hosted OpenAI-compatible backend.
type HostedSettings struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Model   string `mapstructure:"model" validate:"required"`
}

// RetrySettings bounds the plan fetch retry loop.
type RetrySettings struct {
	Attempts  int           `mapstructure:"attempts" validate:"min=1,max=10"`
	BaseDelay time.Duration `mapstructure:"base_delay" validate:"min=0"`
}

// DocsSettings configures framework reference lookup.
type DocsSettings struct {
	Dir       string            `mapstructure:"dir"`
	Framework string            `mapstructure:"framework"`
	URLs      map[string]string `mapstructure:"urls" validate:"dive,url"`
}

// ExecutorSettings configures command execution.
type ExecutorSettings struct {
	BaseDir      string        `mapstructure:"base_dir" validate:"required"`
	CommandDelay time.Duration `mapstructure:"command_delay" validate:"min=0"`
	PTY          bool          `mapstructure:"pty"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: LogLevelInfo,
		Ollama: OllamaSettings{
			Host:       "http://localhost:11434",
			Model:      "codellama",
			MinVersion: "0.1.14",
		},
		Hosted: HostedSettings{
			BaseURL: "https://api.deepseek.com",
			Model:   "deepseek-chat",
		},
		Retry: RetrySettings{
			Attempts:  3,
			BaseDelay: time.Second,
		},
		Docs: DocsSettings{
			Dir: DefaultDocsPath(),
		},
		Executor: ExecutorSettings{
			BaseDir:      ".",
			CommandDelay: 500 * time.Millisecond,
		},
	}
}

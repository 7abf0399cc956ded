package ports

// Config holds user settings read from the configuration file.
type Config struct {
	AliasFile    string `yaml:"alias_file"`
	Color        *bool  `yaml:"color"`
	LogLevel     string `yaml:"log_level"`
	HistoryLimit int    `yaml:"history_limit"`
}

// ConfigLoader loads user settings.
type ConfigLoader interface {
	Load() (Config, error)
	Path() string
}

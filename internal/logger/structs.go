package logger

// Console implements a console based logger writing to stderr.
type Console struct {
	Enabled          bool `json:"enabled"          mapstructure:"enabled"          toml:"enabled"`
	UseConsoleWriter bool `json:"useConsoleWriter" mapstructure:"useConsoleWriter" toml:"useConsoleWriter"`
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled" toml:"enabled"`
	Path    string `json:"path"    mapstructure:"path"    toml:"path"`

	ErrorLog        string `json:"error"           mapstructure:"error"           toml:"error"`
	ErrorMaxSize    int    `json:"errorMaxSize"    mapstructure:"errorMaxSize"    toml:"errorMaxSize"`
	ErrorMaxBackups int    `json:"errorMaxBackups" mapstructure:"errorMaxBackups" toml:"errorMaxBackups"`
	ErrorMaxAge     int    `json:"errorMaxAge"     mapstructure:"errorMaxAge"     toml:"errorMaxAge"`

	InfoLog        string `json:"info"           mapstructure:"info"           toml:"info"`
	InfoMaxSize    int    `json:"infoMaxSize"    mapstructure:"infoMaxSize"    toml:"infoMaxSize"`
	InfoMaxBackups int    `json:"infoMaxBackups" mapstructure:"infoMaxBackups" toml:"infoMaxBackups"`
	InfoMaxAge     int    `json:"infoMaxAge"     mapstructure:"infoMaxAge"     toml:"infoMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel     string `json:"level"        mapstructure:"level"        toml:"level"        validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"` //nolint:lll
	ReportCaller bool   `json:"reportCaller" mapstructure:"reportCaller" toml:"reportCaller"`

	AppName string `json:"appName" mapstructure:"appName" toml:"appName"`

	// Console logs always go to stderr, stdout belongs to the generated passwords.
	Console Console `json:"console" mapstructure:"console" toml:"console"`

	File LogFile `json:"file" mapstructure:"file" toml:"file"`
}

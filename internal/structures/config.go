package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type ForecastConfig struct {
	BaseURL         string        `yaml:"baseUrl" validate:"required"`
	UserAgent       string        `yaml:"userAgent" validate:"required"`
	FetchTimeout    time.Duration `yaml:"fetchTimeout" validate:"required|min:1"`
	MaxAge          time.Duration `yaml:"maxAge" validate:"required|min:1"`
	RefreshInterval time.Duration `yaml:"refreshInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Forecast  ForecastConfig `yaml:"forecast"`
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}

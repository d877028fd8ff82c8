package config

import (
	"os"
	"path/filepath"

	"botgate/internal/dataType"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type RequireParameterConfig struct {
	Enabled       bool   `yaml:"enabled"`
	ParameterName string `yaml:"parameter_name"`
}

type HeaderCheckConfig struct {
	Enabled         bool `yaml:"enabled"`
	DetectKnownBots bool `yaml:"detect_known_bots"`
}

type GeoFilterConfig struct {
	Enabled          bool   `yaml:"enabled"`
	AllowedCountries string `yaml:"allowed_countries"`
	Provider         string `yaml:"provider" validate:"oneof=ip-api mmdb"`
	MMDBPath         string `yaml:"mmdb_path"`
}

type RateLimitConfig struct {
	Enabled     bool   `yaml:"enabled"`
	MaxRequests int    `yaml:"max_requests" validate:"min=1"`
	TimeFrame   int64  `yaml:"time_frame" validate:"min=1"`
	Store       string `yaml:"store" validate:"oneof=file memory redis"`
	RedisURL    string `yaml:"redis_url"`
}

type PathsConfig struct {
	AgentsBlacklist   string `yaml:"agents_blacklist"`
	IPsBlacklist      string `yaml:"ips_blacklist"`
	IPsRangeBlacklist string `yaml:"ips_range_blacklist"`
	RequestLog        string `yaml:"request_log"`
	Logs              string `yaml:"logs"`
	Visits            string `yaml:"visits"`
}

type NotFoundPageConfig struct {
	Title           string `yaml:"title"`
	Heading         string `yaml:"heading"`
	Message         string `yaml:"message"`
	ButtonText      string `yaml:"button_text"`
	ButtonURL       string `yaml:"button_url"`
	BackgroundColor string `yaml:"background_color"`
	TextColor       string `yaml:"text_color"`
	AccentColor     string `yaml:"accent_color"`
}

type Config struct {
	Port         string `yaml:"port"`
	LogPath      string `yaml:"log_path"`
	TestMode     bool   `yaml:"test_mode"`
	ExitBehavior string `yaml:"exit_behavior" validate:"oneof=redirect 404 403 captcha"`
	ExitLink     string `yaml:"exit_link"`
	UserBehavior string `yaml:"user_behavior" validate:"oneof=same_page redirect"`
	UserRedirect string `yaml:"user_redirect"`

	RequireParameter RequireParameterConfig `yaml:"require_parameter"`
	HeaderCheck      HeaderCheckConfig      `yaml:"header_check"`
	GeoFilter        GeoFilterConfig        `yaml:"geo_filter"`
	RateLimit        RateLimitConfig        `yaml:"rate_limit"`
	Paths            PathsConfig            `yaml:"paths"`
	NotFoundPage     NotFoundPageConfig     `yaml:"404_page"`
}

// DefaultConfig returns the configuration used when no file is present.
// Absent configuration is permissive, never fatal.
func DefaultConfig() *Config {
	return &Config{
		Port:         "25580",
		LogPath:      "log",
		TestMode:     false,
		ExitBehavior: dataType.ExitNotFound,
		ExitLink:     "https://google.com",
		UserBehavior: dataType.UserRedirect,
		UserRedirect: "",
		RequireParameter: RequireParameterConfig{
			Enabled:       true,
			ParameterName: "redir",
		},
		HeaderCheck: HeaderCheckConfig{
			Enabled:         true,
			DetectKnownBots: false,
		},
		GeoFilter: GeoFilterConfig{
			Enabled:          false,
			AllowedCountries: "",
			Provider:         dataType.GeoProviderAPI,
		},
		RateLimit: RateLimitConfig{
			Enabled:     true,
			MaxRequests: 30,
			TimeFrame:   60,
			Store:       dataType.RateStoreFile,
		},
		Paths: PathsConfig{
			AgentsBlacklist:   "data/agents_blacklist.txt",
			IPsBlacklist:      "data/ips_blacklist.txt",
			IPsRangeBlacklist: "data/ips_range_blacklist.txt",
			RequestLog:        "data/request_log.json",
			Logs:              "bots_log.txt",
			Visits:            "visits_log.txt",
		},
		NotFoundPage: NotFoundPageConfig{
			Title:           "Page Not Found",
			Heading:         "404 - Page Not Found",
			Message:         "The page you are looking for might have been removed, had its name changed, or is temporarily unavailable.",
			ButtonText:      "Go Home",
			ButtonURL:       "/",
			BackgroundColor: "#f8f9fa",
			TextColor:       "#343a40",
			AccentColor:     "#007bff",
		},
	}
}

// LoadConfig reads <basePath>/config/botgate.yml over the defaults. A
// missing file yields the defaults; an invalid file or a value outside
// the recognized enums is an error.
func LoadConfig(basePath string) (*Config, error) {
	cfg := DefaultConfig()

	if basePath == "" {
		exePath, err := os.Executable()
		if err != nil {
			return nil, err
		}
		basePath = filepath.Dir(exePath)
	}

	configPath := filepath.Join(basePath, "config", "botgate.yml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.resolvePaths(basePath)
			return cfg, cfg.Validate()
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.resolvePaths(basePath)
	return cfg, cfg.Validate()
}

// Validate checks the enum and range constraints on operator input.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// resolvePaths anchors relative store and log paths at the base path.
func (c *Config) resolvePaths(basePath string) {
	anchor := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(basePath, p)
	}
	c.LogPath = anchor(c.LogPath)
	c.Paths.AgentsBlacklist = anchor(c.Paths.AgentsBlacklist)
	c.Paths.IPsBlacklist = anchor(c.Paths.IPsBlacklist)
	c.Paths.IPsRangeBlacklist = anchor(c.Paths.IPsRangeBlacklist)
	c.Paths.RequestLog = anchor(c.Paths.RequestLog)
	c.Paths.Logs = anchor(c.Paths.Logs)
	c.Paths.Visits = anchor(c.Paths.Visits)
}

// EnsureFiles creates the directories and empty store files the pipeline
// expects. The rate window file starts as an empty JSON array.
func (c *Config) EnsureFiles() error {
	dirs := []string{
		c.LogPath,
		filepath.Dir(c.Paths.AgentsBlacklist),
		filepath.Dir(c.Paths.IPsBlacklist),
		filepath.Dir(c.Paths.IPsRangeBlacklist),
		filepath.Dir(c.Paths.RequestLog),
		filepath.Dir(c.Paths.Logs),
		filepath.Dir(c.Paths.Visits),
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	blanks := []string{
		c.Paths.AgentsBlacklist,
		c.Paths.IPsBlacklist,
		c.Paths.IPsRangeBlacklist,
	}
	for _, p := range blanks {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			if err := os.WriteFile(p, nil, 0644); err != nil {
				return err
			}
		}
	}

	if _, err := os.Stat(c.Paths.RequestLog); os.IsNotExist(err) {
		if err := os.WriteFile(c.Paths.RequestLog, []byte("[]"), 0644); err != nil {
			return err
		}
	}
	return nil
}

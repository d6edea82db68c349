package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config controls where puzzle inputs live and how they are fetched.
type Config struct {
	// InputDir holds cached inputs and samples, as <year>/<day>.input.
	InputDir string `yaml:"input_dir"`
	// SessionFile contains the adventofcode.com session cookie.
	SessionFile string `yaml:"session_file"`
	BaseURL     string `yaml:"base_url"`

	session string // from AOC_SESSION
}

const (
	envInputDir    = "AOC_INPUT_DIR"
	envSessionFile = "AOC_SESSION_FILE"
	envSession     = "AOC_SESSION"
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		InputDir:    "inputs",
		SessionFile: filepath.Join("~", "keys", "aoc.session"),
		BaseURL:     "https://adventofcode.com",
	}
}

// LoadConfig reads the yaml config at path. A missing file is not an error;
// the defaults are used instead. Values from the environment (and a .env
// file in the working directory) override the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("path", path).Msg("no config file, using defaults")
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(envInputDir); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv(envSessionFile); v != "" {
		c.SessionFile = v
	}
	c.session = strings.TrimSpace(os.Getenv(envSession))
}

// Validate checks c for errors.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input_dir: must not be empty")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("base_url: missing host")
	}
	return nil
}

// Session returns the adventofcode.com session token. AOC_SESSION wins over
// the session file.
func (c *Config) Session() (string, error) {
	if c.session != "" {
		return c.session, nil
	}
	path := c.SessionFile
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving session file: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("session file %s is empty", path)
	}
	return s, nil
}

func (c *Config) inputURL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(c.BaseURL, "/"), year, day)
}

func (c *Config) inputFile(year, day int) string {
	return filepath.Join(c.InputDir, fmt.Sprint(year), fmt.Sprintf("%d.input", day))
}

func (c *Config) sampleFile(year, day int, name string) string {
	return filepath.Join(c.InputDir, fmt.Sprint(year), fmt.Sprintf("%d.%s.sample", day, name))
}

package settings

import (
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"
)

// DefaultHost is the origin used when neither the config file nor the
// environment provides one. It matches the local development server.
const DefaultHost = "http://localhost:8000"

// Config is used to represent the current state of a CLI instance.
type Config struct {
	Host        string `yaml:"host"`
	Token       string `yaml:"token"`
	GitHubToken string `yaml:"github_token"`
	GeminiKey   string `yaml:"gemini_key"`
	Telemetry   bool   `yaml:"telemetry"`
	TelemetryID string `yaml:"telemetry_id"`

	Debug      bool         `yaml:"-"`
	FileUsed   string       `yaml:"-"`
	HTTPClient *http.Client `yaml:"-"`
}

// Load will read the config from the user's disk and then evaluate possible
// configuration from the environment. A .env file in the working directory is
// honored the same way the server honors its own.
func (cfg *Config) Load() error {
	if err := cfg.LoadFromDisk(); err != nil {
		return err
	}

	_ = godotenv.Load()
	cfg.LoadFromEnv("devsensei_cli")

	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}

	return nil
}

// LoadFromDisk is used to read config from the user's disk and deserialize the YAML into our runtime config.
func (cfg *Config) LoadFromDisk() error {
	path := filepath.Join(SettingsPath(), configFilename())

	if err := ensureSettingsFileExists(path); err != nil {
		return err
	}

	cfg.FileUsed = path

	content, err := os.ReadFile(path) // #nosec
	if err != nil {
		return err
	}

	return yaml.Unmarshal(content, &cfg)
}

// WriteToDisk will write the runtime config instance to disk by serializing the YAML
func (cfg *Config) WriteToDisk() error {
	enc, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(cfg.FileUsed, enc, 0600)
}

// LoadFromEnv will read from environment variables of the given prefix for
// host and the stored credentials specifically.
func (cfg *Config) LoadFromEnv(prefix string) {
	if host := ReadFromEnv(prefix, "host"); host != "" {
		cfg.Host = host
	}

	if token := ReadFromEnv(prefix, "token"); token != "" {
		cfg.Token = token
	}

	if githubToken := ReadFromEnv(prefix, "github_token"); githubToken != "" {
		cfg.GitHubToken = githubToken
	}

	if geminiKey := ReadFromEnv(prefix, "gemini_key"); geminiKey != "" {
		cfg.GeminiKey = geminiKey
	}
}

// ReadFromEnv takes a prefix and field to search the environment for after capitalizing and joining them with an underscore.
func ReadFromEnv(prefix, field string) string {
	name := strings.Join([]string{prefix, field}, "_")
	return os.Getenv(strings.ToUpper(name))
}

// ServerURL returns the parsed URL of the DevSensei server the CLI talks to.
func (cfg *Config) ServerURL() (*url.URL, error) {
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	return url.Parse(host)
}

// configFilename returns the name of the cli config file
func configFilename() string {
	return "cli.yml"
}

// SettingsPath returns the path of the CLI settings directory
func SettingsPath() string {
	home, _ := os.UserHomeDir()
	return path.Join(home, ".devsensei")
}

// ensureSettingsFileExists does just that.
func ensureSettingsFileExists(path string) error {
	_, err := os.Stat(path)

	if err == nil {
		return nil
	}

	if !os.IsNotExist(err) {
		// Filesystem error
		return err
	}

	dir := filepath.Dir(path)

	// Create folder
	if err = os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	_, err = os.Create(path)
	if err != nil {
		return err
	}

	return os.Chmod(path, 0600)
}

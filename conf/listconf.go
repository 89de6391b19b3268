package conf

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const defaultBaseURL = "https://list.fmph.uniba.sk"
const defaultPollIntervalMs = 500

type ListConf struct {
	BaseURL        string `toml:"base_url"`
	Email          string `toml:"email"`
	Password       string `toml:"password"`
	PollIntervalMs int    `toml:"poll_interval_ms"`
}

func (c *ListConf) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// GetListConfFromEnv reads the portal configuration from environment
// variables, falling back to defaults. A .env file is loaded first if
// one is present in the working directory.
func GetListConfFromEnv() *ListConf {
	_ = godotenv.Load()

	result := &ListConf{
		BaseURL:        defaultBaseURL,
		PollIntervalMs: defaultPollIntervalMs,
	}

	if v := os.Getenv("LIST_BASE_URL"); v != "" {
		result.BaseURL = v
	}
	result.Email = os.Getenv("LIST_EMAIL")
	result.Password = os.Getenv("LIST_PASSWORD")
	if v := os.Getenv("LIST_POLL_INTERVAL_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Sprintf("LIST_POLL_INTERVAL_MS is not a number: %v", err))
		}
		result.PollIntervalMs = ms
	}

	return result
}

// MergeFile overlays values from a TOML file onto c. Fields absent from
// the file keep their current values.
func MergeFile(path string, c *ListConf) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

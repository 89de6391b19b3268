package conf_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/list-fmph/list-submit/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetListConfFromEnvDefaults(t *testing.T) {
	t.Setenv("LIST_BASE_URL", "")
	t.Setenv("LIST_EMAIL", "student@uniba.sk")
	t.Setenv("LIST_PASSWORD", "heslo123")

	cfg := conf.GetListConfFromEnv()
	assert.Equal(t, "https://list.fmph.uniba.sk", cfg.BaseURL)
	assert.Equal(t, "student@uniba.sk", cfg.Email)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval())
}

func TestMergeFileOverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list-submit.toml")
	content := `
base_url = "http://localhost:8080"
poll_interval_ms = 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := &conf.ListConf{
		BaseURL:        "https://list.fmph.uniba.sk",
		Email:          "student@uniba.sk",
		PollIntervalMs: 500,
	}
	require.NoError(t, conf.MergeFile(path, cfg))

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval())
	// Fields absent from the file keep their values.
	assert.Equal(t, "student@uniba.sk", cfg.Email)
}

func TestMergeFileMissingFile(t *testing.T) {
	cfg := &conf.ListConf{}
	assert.Error(t, conf.MergeFile(filepath.Join(t.TempDir(), "nope.toml"), cfg))
}

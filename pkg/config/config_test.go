package configutils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	configutils "github.com/oracle/oci-go-sdk-sub024/pkg/config"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Region  string        `yaml:"region" env:"TEST_OCI_REGION" env-default:"us-ashburn-1"`
	MaxWait time.Duration `yaml:"max_wait" env:"TEST_OCI_MAX_WAIT" env-default:"20m"`
}

func TestLoad(t *testing.T) {
	t.Run("ok: env defaults", func(t *testing.T) {
		cfg, err := configutils.Load[testConfig]("")
		require.NoError(t, err)
		require.Equal(t, "us-ashburn-1", cfg.Region)
		require.Equal(t, 20*time.Minute, cfg.MaxWait)
	})

	t.Run("ok: file with env override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("region: eu-frankfurt-1\nmax_wait: 5m\n"), 0o600))
		t.Setenv("TEST_OCI_MAX_WAIT", "90s")

		cfg, err := configutils.Load[testConfig](path)
		require.NoError(t, err)
		require.Equal(t, "eu-frankfurt-1", cfg.Region)
		require.Equal(t, 90*time.Second, cfg.MaxWait)
	})

	t.Run("error: missing file", func(t *testing.T) {
		_, err := configutils.Load[testConfig](filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

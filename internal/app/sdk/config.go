package sdkapp

import (
	"time"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
)

type Config struct {
	Env       string          `yaml:"env" env:"OCI_CLI_ENV" env-default:"dev"`
	Region    string          `yaml:"region" env:"OCI_REGION" env-default:"us-ashburn-1"`
	Endpoints EndpointsConfig `yaml:"endpoints"`
	HTTP      HTTPConfig      `yaml:"http"`
	Auth      AuthConfig      `yaml:"auth"`
	Waiter    WaiterConfig    `yaml:"waiter"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
}

// EndpointsConfig overrides the regional endpoint of a service.
type EndpointsConfig struct {
	ResourceManager string `yaml:"resource_manager" env:"OCI_RESOURCE_MANAGER_ENDPOINT"`
	DataSafe        string `yaml:"data_safe" env:"OCI_DATA_SAFE_ENDPOINT"`
}

type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout" env:"OCI_HTTP_TIMEOUT" env-default:"60s"`
	UserAgent string        `yaml:"user_agent" env:"OCI_USER_AGENT" env-default:"oci-go-sdk-sub024"`
}

type AuthConfig struct {
	BearerToken string `yaml:"bearer_token" env:"OCI_BEARER_TOKEN"`
}

type WaiterConfig struct {
	MaxInterval time.Duration `yaml:"max_interval" env:"OCI_WAIT_MAX_INTERVAL" env-default:"30s"`
	MaxWait     time.Duration `yaml:"max_wait" env:"OCI_WAIT_MAX_WAIT" env-default:"20m"`
}

type ArtifactsConfig struct {
	Enabled   bool   `yaml:"enabled" env:"OCI_ARTIFACTS_ENABLED"`
	Endpoint  string `yaml:"endpoint" env:"OCI_ARTIFACTS_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"OCI_ARTIFACTS_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"OCI_ARTIFACTS_SECRET_KEY"`
	Region    string `yaml:"region" env:"OCI_ARTIFACTS_REGION"`
	Bucket    string `yaml:"bucket" env:"OCI_ARTIFACTS_BUCKET" env-default:"oci-artifacts"`
	UseSSL    bool   `yaml:"use_ssl" env:"OCI_ARTIFACTS_USE_SSL" env-default:"true"`
}

// WaitConfig returns the configured budgets with per-call overrides applied.
// Non-positive overrides keep the configured value.
func (c *Config) WaitConfig(maxIntervalSeconds, maxWaitSeconds int) waitdomain.WaitConfig {
	cfg := waitdomain.WaitConfig{
		MaxInterval: c.Waiter.MaxInterval,
		MaxWait:     c.Waiter.MaxWait,
	}
	if maxIntervalSeconds > 0 {
		cfg.MaxInterval = time.Duration(maxIntervalSeconds) * time.Second
	}
	if maxWaitSeconds > 0 {
		cfg.MaxWait = time.Duration(maxWaitSeconds) * time.Second
	}
	return cfg.WithDefaults()
}

package sdkapp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkapp "github.com/oracle/oci-go-sdk-sub024/internal/app/sdk"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *sdkapp.Config {
	return &sdkapp.Config{
		Region: "us-phoenix-1",
		HTTP:   sdkapp.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "sdkapp-test"},
		Waiter: sdkapp.WaiterConfig{MaxInterval: 30 * time.Second, MaxWait: 20 * time.Minute},
	}
}

func TestNewApp(t *testing.T) {
	t.Run("ok: regional endpoints", func(t *testing.T) {
		app, err := sdkapp.NewApp(context.Background(), testConfig(), zap.NewNop())
		require.NoError(t, err)
		require.Equal(t, "https://resourcemanager.us-phoenix-1.oci.oraclecloud.com", app.ResourceManager().Endpoint())
		require.Equal(t, "https://datasafe.us-phoenix-1.oci.oraclecloud.com", app.DataSafe().Endpoint())
		require.Nil(t, app.Artifacts())
	})

	t.Run("ok: endpoint override and bearer token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.Equal(t, "sdkapp-test", r.Header.Get("User-Agent"))
			_ = json.NewEncoder(w).Encode(rmapi.Stack{ID: "stack-1", LifecycleState: rmapi.StackLifecycleStateActive})
		}))
		defer srv.Close()

		cfg := testConfig()
		cfg.Endpoints.ResourceManager = srv.URL
		cfg.Auth.BearerToken = "tok"

		app, err := sdkapp.NewApp(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)

		res, err := app.ResourceManager().GetStack(context.Background(), &rmapi.GetStackArgs{StackID: "stack-1"})
		require.NoError(t, err)
		require.Equal(t, "stack-1", res.Stack.ID)
	})

	t.Run("error: artifacts enabled without endpoint", func(t *testing.T) {
		cfg := testConfig()
		cfg.Artifacts.Enabled = true

		_, err := sdkapp.NewApp(context.Background(), cfg, zap.NewNop())
		require.Error(t, err)
	})
}

func TestConfig_WaitConfig(t *testing.T) {
	cfg := testConfig()

	got := cfg.WaitConfig(0, 0)
	require.Equal(t, 30*time.Second, got.MaxInterval)
	require.Equal(t, 20*time.Minute, got.MaxWait)

	got = cfg.WaitConfig(5, 60)
	require.Equal(t, 5*time.Second, got.MaxInterval)
	require.Equal(t, time.Minute, got.MaxWait)

	got = (&sdkapp.Config{}).WaitConfig(-1, 0)
	require.Equal(t, 30*time.Second, got.MaxInterval)
	require.Equal(t, 1200*time.Second, got.MaxWait)
}

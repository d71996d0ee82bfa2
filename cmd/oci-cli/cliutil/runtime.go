package cliutil

import (
	"context"
	"errors"

	sdkapp "github.com/oracle/oci-go-sdk-sub024/internal/app/sdk"
	configutils "github.com/oracle/oci-go-sdk-sub024/pkg/config"
	logutils "github.com/oracle/oci-go-sdk-sub024/pkg/logging"
	"github.com/spf13/cobra"
)

type appKey struct{}

// Bootstrap loads the configuration and builds the application. It is the
// persistent pre-run of the root command.
func Bootstrap(configPath, env *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := configutils.Load[sdkapp.Config](*configPath)
		if err != nil {
			return err
		}
		if *env != "" {
			cfg.Env = *env
		}

		log, err := logutils.NewLogger(cfg.Env)
		if err != nil {
			return err
		}

		app, err := sdkapp.NewApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}

		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, app))
		return nil
	}
}

func App(cmd *cobra.Command) (*sdkapp.App, error) {
	app, ok := cmd.Context().Value(appKey{}).(*sdkapp.App)
	if !ok {
		return nil, errors.New("application is not initialized")
	}
	return app, nil
}

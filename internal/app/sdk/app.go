package sdkapp

import (
	"context"
	"fmt"
	"net/http"

	miniocomp "github.com/oracle/oci-go-sdk-sub024/internal/app/components/minio"
	artifactrepo "github.com/oracle/oci-go-sdk-sub024/internal/repositories/artifacts"
	compositesrv "github.com/oracle/oci-go-sdk-sub024/internal/services/composite"
	waitsrv "github.com/oracle/oci-go-sdk-sub024/internal/services/waiter"
	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
	dsapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/datasafe"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"go.uber.org/zap"
)

type App struct {
	cfg *Config
	log *zap.Logger

	waiter          *waitsrv.Service
	resourceManager *rmapi.Client
	dataSafe        *dsapi.Client
	rmComposite     *compositesrv.ResourceManagerService
	dsComposite     *compositesrv.DataSafeService
	artifacts       *artifactrepo.Repository
}

func NewApp(ctx context.Context, cfg *Config, log *zap.Logger) (*App, error) {
	restOpts := []resttr.ClientOption{
		resttr.WithTimeout(cfg.HTTP.Timeout),
		resttr.WithUserAgent(cfg.HTTP.UserAgent),
		resttr.WithLogger(log.Named("rest")),
	}
	if cfg.Auth.BearerToken != "" {
		restOpts = append(restOpts, resttr.WithTransport(&resttr.BearerTokenTransport{
			RoundTripper: http.DefaultTransport,
			Token:        cfg.Auth.BearerToken,
		}))
	}

	resourceManager, err := rmapi.NewClient(endpoint(cfg.Endpoints.ResourceManager, rmapi.ServiceName, cfg.Region), restOpts...)
	if err != nil {
		return nil, err
	}

	dataSafe, err := dsapi.NewClient(endpoint(cfg.Endpoints.DataSafe, dsapi.ServiceName, cfg.Region), restOpts...)
	if err != nil {
		return nil, err
	}

	waiter := waitsrv.NewService(waitsrv.WithLogger(log.Named("waiter")))

	app := &App{
		cfg:             cfg,
		log:             log,
		waiter:          waiter,
		resourceManager: resourceManager,
		dataSafe:        dataSafe,
		rmComposite:     compositesrv.NewResourceManagerService(resourceManager, waiter),
		dsComposite:     compositesrv.NewDataSafeService(dataSafe, waiter),
	}

	if cfg.Artifacts.Enabled {
		objectStorage, err := miniocomp.NewConnection(miniocomp.Config{
			Endpoint:  cfg.Artifacts.Endpoint,
			AccessKey: cfg.Artifacts.AccessKey,
			SecretKey: cfg.Artifacts.SecretKey,
			Region:    cfg.Artifacts.Region,
			UseSSL:    cfg.Artifacts.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("cannot configure artifact storage: %w", err)
		}

		app.artifacts, err = artifactrepo.NewRepository(ctx, objectStorage, cfg.Artifacts.Bucket)
		if err != nil {
			return nil, err
		}
		log.Debug("artifact storage ready", zap.String("bucket", cfg.Artifacts.Bucket))
	}

	return app, nil
}

func endpoint(override, service, region string) string {
	if override != "" {
		return override
	}
	return resttr.RegionalEndpoint(service, region)
}

func (a *App) Config() *Config { return a.cfg }

func (a *App) Logger() *zap.Logger { return a.log }

func (a *App) Waiter() *waitsrv.Service { return a.waiter }

func (a *App) ResourceManager() *rmapi.Client { return a.resourceManager }

func (a *App) DataSafe() *dsapi.Client { return a.dataSafe }

func (a *App) ResourceManagerComposite() *compositesrv.ResourceManagerService { return a.rmComposite }

func (a *App) DataSafeComposite() *compositesrv.DataSafeService { return a.dsComposite }

// Artifacts is nil unless artifact storage is enabled.
func (a *App) Artifacts() *artifactrepo.Repository { return a.artifacts }

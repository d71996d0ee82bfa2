package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// NewConnection builds a client without contacting the server; the first
// request made with it is the reachability check.
func NewConnection(cfg Config) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("artifact storage endpoint is empty")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create artifact storage client: %w", err)
	}

	return client, nil
}

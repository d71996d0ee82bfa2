package artifactrepo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/containerd/errdefs"
	"github.com/minio/minio-go/v7"
)

type ArtifactKind string

const (
	ArtifactKindStackConfig     ArtifactKind = "stack-config"
	ArtifactKindJobState        ArtifactKind = "job-tfstate"
	ArtifactKindConnectorBundle ArtifactKind = "connector-bundle"
)

var artifactExtensions = map[ArtifactKind]string{
	ArtifactKindStackConfig:     ".zip",
	ArtifactKindJobState:        ".json",
	ArtifactKindConnectorBundle: ".zip",
}

var ErrUnknownKind = errors.New("unknown artifact kind")

//go:generate mockery --name ObjectStorage --output ./mocks --outpkg mocks --with-expecter --filename object_storage.go
type ObjectStorage interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
}

type Artifact struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string
}

type SaveArtifactArgs struct {
	Kind       ArtifactKind
	ResourceID string
	Content    io.Reader
	// Size is -1 when unknown.
	Size        int64
	ContentType string
}

type Repository struct {
	objectStorage ObjectStorage
	bucketName    string
}

func NewRepository(ctx context.Context, objectStorage ObjectStorage, bucketName string) (*Repository, error) {
	exists, err := objectStorage.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("cannot check if artifacts bucket exists: %w", err)
	}

	if !exists {
		if err := objectStorage.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("cannot create artifacts bucket: %w", err)
		}
	}

	return &Repository{
		objectStorage: objectStorage,
		bucketName:    bucketName,
	}, nil
}

func (r *Repository) SaveArtifact(ctx context.Context, args *SaveArtifactArgs) (*Artifact, error) {
	if args == nil || args.Content == nil {
		return nil, fmt.Errorf("%w: artifact content is required", errdefs.ErrInvalidArgument)
	}

	key, err := ArtifactKey(args.Kind, args.ResourceID)
	if err != nil {
		return nil, err
	}

	contentType := args.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := r.objectStorage.PutObject(ctx, r.bucketName, key, args.Content, args.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot save artifact %q: %w", key, err)
	}

	return &Artifact{
		Bucket: r.bucketName,
		Key:    key,
		Size:   info.Size,
		ETag:   info.ETag,
	}, nil
}

func (r *Repository) OpenArtifact(ctx context.Context, key string) (io.ReadCloser, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: artifact key is required", errdefs.ErrInvalidArgument)
	}

	object, err := r.objectStorage.GetObject(ctx, r.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("cannot get artifact %q: %w", key, err)
	}

	if _, err := object.Stat(); err != nil {
		_ = object.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: artifact %q", errdefs.ErrNotFound, key)
		}
		return nil, fmt.Errorf("artifact %q is inaccessible: %w", key, err)
	}

	return object, nil
}

// ArtifactKey builds the object key of the artifact of kind for a resource.
// OCIDs keep their dots; path separators are flattened.
func ArtifactKey(kind ArtifactKind, resourceID string) (string, error) {
	ext, ok := artifactExtensions[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	id := strings.TrimSpace(resourceID)
	if id == "" {
		return "", fmt.Errorf("%w: resource id is required", errdefs.ErrInvalidArgument)
	}
	id = strings.NewReplacer("/", "_", "\\", "_").Replace(id)

	return string(kind) + "/" + id + ext, nil
}

package artifactrepo_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/minio/minio-go/v7"
	artifactrepo "github.com/oracle/oci-go-sdk-sub024/internal/repositories/artifacts"
	"github.com/oracle/oci-go-sdk-sub024/internal/repositories/artifacts/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArtifactKey(t *testing.T) {
	tests := []struct {
		name       string
		kind       artifactrepo.ArtifactKind
		resourceID string
		want       string
		wantErr    require.ErrorAssertionFunc
	}{
		{
			name:       "job state",
			kind:       artifactrepo.ArtifactKindJobState,
			resourceID: "ocid1.ormjob.oc1.phx.aaaa",
			want:       "job-tfstate/ocid1.ormjob.oc1.phx.aaaa.json",
			wantErr:    require.NoError,
		},
		{
			name:       "stack config with separators",
			kind:       artifactrepo.ArtifactKindStackConfig,
			resourceID: " a/b\\c ",
			want:       "stack-config/a_b_c.zip",
			wantErr:    require.NoError,
		},
		{
			name:       "connector bundle",
			kind:       artifactrepo.ArtifactKindConnectorBundle,
			resourceID: "conn-1",
			want:       "connector-bundle/conn-1.zip",
			wantErr:    require.NoError,
		},
		{
			name:       "unknown kind",
			kind:       "plan",
			resourceID: "job-1",
			wantErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, artifactrepo.ErrUnknownKind)
			},
		},
		{
			name: "empty resource",
			kind: artifactrepo.ArtifactKindJobState,
			wantErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, errdefs.ErrInvalidArgument)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := artifactrepo.ArtifactKey(tt.kind, tt.resourceID)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newStorage(t *testing.T) *mocks.ObjectStorage {
	t.Helper()

	storage := mocks.NewObjectStorage(t)
	storage.EXPECT().BucketExists(mock.Anything, "oci-artifacts").Return(true, nil)
	return storage
}

func TestNewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: creates missing bucket", func(t *testing.T) {
		storage := mocks.NewObjectStorage(t)
		storage.EXPECT().BucketExists(mock.Anything, "oci-artifacts").Return(false, nil)
		storage.EXPECT().MakeBucket(mock.Anything, "oci-artifacts", minio.MakeBucketOptions{}).Return(nil)

		_, err := artifactrepo.NewRepository(ctx, storage, "oci-artifacts")
		require.NoError(t, err)
	})

	t.Run("ok: reuses bucket", func(t *testing.T) {
		_, err := artifactrepo.NewRepository(ctx, newStorage(t), "oci-artifacts")
		require.NoError(t, err)
	})

	t.Run("error: bucket check fails", func(t *testing.T) {
		wantErr := errors.New("offline")
		storage := mocks.NewObjectStorage(t)
		storage.EXPECT().BucketExists(mock.Anything, "oci-artifacts").Return(false, wantErr)

		_, err := artifactrepo.NewRepository(ctx, storage, "oci-artifacts")
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("error: bucket creation fails", func(t *testing.T) {
		wantErr := errors.New("denied")
		storage := mocks.NewObjectStorage(t)
		storage.EXPECT().BucketExists(mock.Anything, "oci-artifacts").Return(false, nil)
		storage.EXPECT().MakeBucket(mock.Anything, "oci-artifacts", minio.MakeBucketOptions{}).Return(wantErr)

		_, err := artifactrepo.NewRepository(ctx, storage, "oci-artifacts")
		require.ErrorIs(t, err, wantErr)
	})
}

func TestRepository_SaveArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		storage := newStorage(t)
		storage.EXPECT().
			PutObject(mock.Anything, "oci-artifacts", "job-tfstate/job-1.json", mock.Anything, int64(-1), minio.PutObjectOptions{ContentType: "application/octet-stream"}).
			RunAndReturn(func(_ context.Context, bucketName, objectName string, reader io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
				body, err := io.ReadAll(reader)
				require.NoError(t, err)
				require.Equal(t, `{"version":4}`, string(body))
				return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(body)), ETag: "etag-1"}, nil
			})

		repo, err := artifactrepo.NewRepository(ctx, storage, "oci-artifacts")
		require.NoError(t, err)

		artifact, err := repo.SaveArtifact(ctx, &artifactrepo.SaveArtifactArgs{
			Kind:       artifactrepo.ArtifactKindJobState,
			ResourceID: "job-1",
			Content:    bytes.NewBufferString(`{"version":4}`),
			Size:       -1,
		})
		require.NoError(t, err)
		require.Equal(t, &artifactrepo.Artifact{Bucket: "oci-artifacts", Key: "job-tfstate/job-1.json", Size: 13, ETag: "etag-1"}, artifact)
	})

	t.Run("error: no content", func(t *testing.T) {
		repo, err := artifactrepo.NewRepository(ctx, newStorage(t), "oci-artifacts")
		require.NoError(t, err)

		_, err = repo.SaveArtifact(ctx, &artifactrepo.SaveArtifactArgs{Kind: artifactrepo.ArtifactKindJobState, ResourceID: "job-1"})
		require.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})

	t.Run("error: put fails", func(t *testing.T) {
		wantErr := errors.New("denied")
		storage := newStorage(t)
		storage.EXPECT().
			PutObject(mock.Anything, "oci-artifacts", "stack-config/stack-1.zip", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, wantErr)

		repo, err := artifactrepo.NewRepository(ctx, storage, "oci-artifacts")
		require.NoError(t, err)

		_, err = repo.SaveArtifact(ctx, &artifactrepo.SaveArtifactArgs{
			Kind:       artifactrepo.ArtifactKindStackConfig,
			ResourceID: "stack-1",
			Content:    bytes.NewBufferString("PK"),
		})
		require.ErrorIs(t, err, wantErr)
	})
}

func TestRepository_OpenArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty key", func(t *testing.T) {
		repo, err := artifactrepo.NewRepository(ctx, newStorage(t), "oci-artifacts")
		require.NoError(t, err)

		_, err = repo.OpenArtifact(ctx, " ")
		require.ErrorIs(t, err, errdefs.ErrInvalidArgument)
	})

	t.Run("error: get fails", func(t *testing.T) {
		wantErr := errors.New("unreachable")
		storage := newStorage(t)
		storage.EXPECT().GetObject(mock.Anything, "oci-artifacts", "job-tfstate/job-1.json", minio.GetObjectOptions{}).Return(nil, wantErr)

		repo, err := artifactrepo.NewRepository(ctx, storage, "oci-artifacts")
		require.NoError(t, err)

		_, err = repo.OpenArtifact(ctx, "job-tfstate/job-1.json")
		require.ErrorIs(t, err, wantErr)
	})
}

package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"backup-merger/core/storage"
	"backup-merger/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "backups").Return(true, nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "backups", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "backups").Return(false, nil)
		m.On("MakeBucket", ctx, "backups", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "backups", "eu-west-1"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "backups").Return(false, errors.New("denied"))

		err := storage.EnsureBucket(ctx, m, "backups", "")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "calls-1.xml")
	require.NoError(t, os.WriteFile(path, []byte("<calls/>"), 0644))

	m := new(mocks.Client)
	m.On("PutObject", ctx, "backups", "merged/set/calls-1.xml", mock.Anything, int64(8),
		minio.PutObjectOptions{ContentType: storage.ContentTypeXML}).
		Return(minio.UploadInfo{Key: "merged/set/calls-1.xml", Size: 8}, nil)

	info, err := storage.Upload(ctx, m, "backups", "merged/set/calls-1.xml", path)
	require.NoError(t, err)
	assert.Equal(t, int64(8), info.Size)
	m.AssertExpectations(t)

	_, err = storage.Upload(ctx, m, "backups", "x", filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

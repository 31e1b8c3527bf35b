// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to publish merged backup files to a bucket.
// This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (with size and options).
//
// Upload streams a local file into the bucket with the XML content type.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	info, err := storage.Upload(ctx, client, "backups", "merged/set/calls-1.xml", path)
package storage

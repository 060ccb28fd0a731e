package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsouza/fake-gcs-server/fakestorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBucket = "bucki"

func newTestGCSClient(t *testing.T, objects ...fakestorage.Object) (*GCSClient, *fakestorage.Server) {
	t.Helper()
	server := fakestorage.NewServer(objects)
	t.Cleanup(server.Stop)
	if len(objects) == 0 {
		server.CreateBucketWithOpts(fakestorage.CreateBucketOpts{Name: testBucket})
	}

	return &GCSClient{Client: server.Client(), Bucket: testBucket}, server
}

func TestGCSCreateDirectory(t *testing.T) {
	client, server := newTestGCSClient(t)

	err := client.CreateDirectory(context.Background(), "data/sub")
	assert.Nil(t, err)

	_, getErr := server.GetObject(testBucket, "data/sub/")
	assert.Nil(t, getErr)
}

func TestGCSWriteFile(t *testing.T) {
	client, server := newTestGCSClient(t)
	localPath := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(localPath, []byte("hello lake"), 0o644))
	fd, err := os.Open(localPath)
	require.NoError(t, err)
	defer fd.Close()

	assert.Nil(t, client.CreateFile(context.Background(), "data/a.txt"))
	assert.Nil(t, client.WriteFile(context.Background(), "data/a.txt", fd))

	obj, getErr := server.GetObject(testBucket, "data/a.txt")
	require.NoError(t, getErr)
	assert.Equal(t, "hello lake", string(obj.Content))
}

// brokenReader yields some data and then fails.
type brokenReader struct {
	sent bool
	err  error
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if r.sent {
		return 0, r.err
	}
	r.sent = true
	return copy(p, "partial"), nil
}

func TestGCSWriteFailureLeavesNoObject(t *testing.T) {
	client, server := newTestGCSClient(t)
	diskErr := errors.New("disk read failed")

	err := client.write(context.Background(), "data/partial.txt", &brokenReader{err: diskErr})

	assert.ErrorIs(t, err, diskErr)
	_, getErr := server.GetObject(testBucket, "data/partial.txt")
	assert.Error(t, getErr)
}

func TestGCSFileExists(t *testing.T) {
	client, _ := newTestGCSClient(t, fakestorage.Object{
		ObjectAttrs: fakestorage.ObjectAttrs{BucketName: testBucket, Name: "data/a.txt"},
		Content:     []byte("a"),
	})

	exists, err := client.FileExists(context.Background(), "data/a.txt")
	assert.Nil(t, err)
	assert.True(t, exists)

	exists, err = client.FileExists(context.Background(), "data/missing.txt")
	assert.Nil(t, err)
	assert.False(t, exists)
}

func TestUploadIntoGCS(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a"})
	writeZip(t, filepath.Join(root, "bundle.zip"), map[string]string{"x/y.txt": "y"})
	client, server := newTestGCSClient(t)

	_, err := NewUploader(client, WithTempDir(t.TempDir())).Upload(context.Background(), root, "data")
	require.NoError(t, err)

	obj, getErr := server.GetObject(testBucket, "data/bundle.zip/x/y.txt")
	require.NoError(t, getErr)
	assert.Equal(t, "y", string(obj.Content))
}

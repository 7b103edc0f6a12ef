package s3

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/TyOverby/latin/fs"
)

// fakeObjectServer emulates the GET surface the transfer manager needs for
// a single bucket/key (path-style addressing, range requests ignored).
func fakeObjectServer(t *testing.T, bucket, key string, payload []byte) *httptest.Server {
	t.Helper()
	objectPath := "/" + bucket + "/" + key
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != objectPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("ETag", `"fake-etag"`)
		w.Header().Set("Accept-Ranges", "bytes")
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *awss3.Client {
	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: aws.AnonymousCredentials{},
	}
	return awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
		o.UsePathStyle = true
	})
}

func TestDownload(t *testing.T) {
	payload := []byte("s3 object payload")
	srv := fakeObjectServer(t, "bucket", "data.bin", payload)
	client := newTestClient(srv)
	to := filepath.Join(t.TempDir(), "data.bin")

	res := Download(context.Background(), client, "bucket", "data.bin", to)
	require.Nil(t, res.Err())

	data, err := os.ReadFile(to)
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestDownload_MissingObject(t *testing.T) {
	srv := fakeObjectServer(t, "bucket", "data.bin", nil)
	client := newTestClient(srv)

	err := Download(context.Background(), client, "bucket", "no-such-key",
		filepath.Join(t.TempDir(), "out.bin")).Err()
	require.NotNil(t, err)
	require.Equal(t, Domain, err.Domain)
	require.Equal(t, StepDownload, err.Step)
}

func TestDownload_CreateFault(t *testing.T) {
	srv := fakeObjectServer(t, "bucket", "data.bin", []byte("payload"))
	client := newTestClient(srv)

	ffs := fs.NewFaulty(nil)
	ffs.FailOn("open", os.ErrPermission)

	err := Download(context.Background(), client, "bucket", "data.bin",
		filepath.Join(t.TempDir(), "out.bin"), WithFileSystem(ffs)).Err()
	require.NotNil(t, err)
	require.Equal(t, StepCreate, err.Step)
	require.ErrorIs(t, err, os.ErrPermission)
	require.Equal(t, 0, ffs.Opens())
}

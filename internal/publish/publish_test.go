package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		want string
		err  error
	}{
		{"index.html", "index.html", nil},
		{"assets/./app.css", "assets/app.css", nil},
		{`assets\app.js`, "assets/app.js", nil},
		{"", "", ErrEmptyName},
		{"  ", "", ErrEmptyName},
		{".", "", ErrEmptyName},
		{"/etc/passwd", "", ErrInvalidName},
		{"../secret", "", ErrInvalidName},
		{"a/../../b", "", ErrInvalidName},
	}

	for _, tt := range tests {
		got, err := CleanName(tt.name)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "CleanName(%q)", tt.name)
			continue
		}
		require.NoError(t, err, "CleanName(%q)", tt.name)
		assert.Equal(t, tt.want, got)
	}
}

func TestDiskPublisher(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	p, err := NewDiskPublisher(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, dir, p.Dir())

	ctx := context.Background()
	require.NoError(t, All(ctx, p,
		Object{Name: "index.html", ContentType: "text/html", Body: []byte("<p>hi</p>")},
		Object{Name: "assets/controls.css", ContentType: "text/css", Body: []byte("a{}")},
	))

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "assets", "controls.css"))
	require.NoError(t, err)
	assert.Equal(t, "a{}", string(data))

	ct, err := p.ContentType("assets/controls.css")
	require.NoError(t, err)
	assert.Equal(t, "text/css", ct)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".publish-"), "temp file left behind: %s", e.Name())
	}
}

func TestDiskPublisherLimits(t *testing.T) {
	p, err := NewDiskPublisher(t.TempDir(), 4)
	require.NoError(t, err)
	ctx := context.Background()

	err = p.Publish(ctx, "big.txt", "text/plain", strings.NewReader("12345"))
	assert.ErrorIs(t, err, ErrTooLarge)
	_, statErr := os.Stat(filepath.Join(p.Dir(), "big.txt"))
	assert.True(t, os.IsNotExist(statErr))

	assert.NoError(t, p.Publish(ctx, "ok.txt", "text/plain", strings.NewReader("1234")))
	assert.ErrorIs(t, p.Publish(ctx, "../x", "text/plain", strings.NewReader("")), ErrInvalidName)
}

func TestAllStopsOnCanceledContext(t *testing.T) {
	p, err := NewDiskPublisher(t.TempDir(), 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = All(ctx, p, Object{Name: "a", Body: []byte("x")})
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func TestS3Publisher(t *testing.T) {
	client := &fakeS3{}
	p := NewS3Publisher(client, "site", "gallery", 0)

	err := p.Publish(context.Background(), "index.html", "text/html", strings.NewReader("<html>"))
	require.NoError(t, err)

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "site", aws.ToString(in.Bucket))
	assert.Equal(t, "gallery/index.html", aws.ToString(in.Key))
	assert.Equal(t, "text/html", aws.ToString(in.ContentType))
	assert.Contains(t, in.Metadata, "publish-time")
	assert.Equal(t, "<html>", client.bodies[0])
}

func TestS3PublisherKey(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "a/b.css"},
		{"site/", "site/a/b.css"},
		{"/site", "site/a/b.css"},
	}
	for _, tt := range tests {
		key, err := NewS3Publisher(&fakeS3{}, "b", tt.prefix, 0).Key("a/b.css")
		require.NoError(t, err)
		assert.Equal(t, tt.want, key)
	}

	_, err := NewS3Publisher(&fakeS3{}, "b", "", 0).Key("")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestS3PublisherErrors(t *testing.T) {
	boom := errors.New("boom")
	p := NewS3Publisher(&fakeS3{err: boom}, "b", "", 0)
	assert.ErrorIs(t, p.Publish(context.Background(), "a", "", strings.NewReader("x")), boom)

	limited := NewS3Publisher(&fakeS3{}, "b", "", 2)
	assert.ErrorIs(t, limited.Publish(context.Background(), "a", "", strings.NewReader("xyz")), ErrTooLarge)
}

func TestNewS3Client(t *testing.T) {
	client := NewS3Client(S3ClientOptions{Region: "eu-west-1", Endpoint: "http://localhost:9000"})
	opts := client.Options()
	assert.Equal(t, "eu-west-1", opts.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)

	t.Setenv("AWS_ACCESS_KEY_ID", "")
	_, err := envCredentials().Retrieve(context.Background())
	assert.Error(t, err)

	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	creds, err := envCredentials().Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id", creds.AccessKeyID)
}

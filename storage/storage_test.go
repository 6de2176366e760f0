package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/advdv/queen/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckName(t *testing.T) {
	for _, name := range []string{"f.txt", "my file.png", ".hidden", "a..b"} {
		assert.NoError(t, storage.CheckName(name), name)
	}

	for _, name := range []string{"", ".", "..", "...", "a/b", `a\b`, "../etc"} {
		err := storage.CheckName(name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, storage.ErrUnsafeName))
	}
}

func TestDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "uploads")
	dir, err := storage.NewDir(dest)
	require.NoError(t, err)
	assert.Equal(t, dest, dir.Path())

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	ctx := context.Background()
	path, err := dir.Put(ctx, "f.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "f.txt"), path)

	_, err = dir.Put(ctx, "f.txt", []byte("again"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "again", string(data), "same name overwrites")

	_, err = dir.Put(ctx, "..", []byte("x"))
	assert.True(t, errors.Is(err, storage.ErrUnsafeName))
}

func TestDirCanceled(t *testing.T) {
	dir, err := storage.NewDir(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = dir.Put(ctx, "f.txt", []byte("hello"))
	require.ErrorIs(t, err, context.Canceled)
}

type fakeS3 struct {
	puts map[string]string
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.puts[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = string(data)
	return &s3.PutObjectOutput{}, nil
}

func TestS3(t *testing.T) {
	client := &fakeS3{puts: map[string]string{}}
	store := storage.NewS3(client, "my-bucket", "uploads")

	loc, err := store.Put(context.Background(), "f.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "s3://my-bucket/uploads/f.txt", loc)
	assert.Equal(t, map[string]string{"my-bucket/uploads/f.txt": "hello"}, client.puts)

	_, err = store.Put(context.Background(), "..", nil)
	assert.True(t, errors.Is(err, storage.ErrUnsafeName))

	client.err = errors.New("access denied")
	_, err = store.Put(context.Background(), "g.txt", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `put object "uploads/g.txt": access denied`)
}

func TestUnique(t *testing.T) {
	dir, err := storage.NewDir(t.TempDir())
	require.NoError(t, err)
	store := storage.Unique(dir)

	p1, err := store.Put(context.Background(), "f.txt", []byte("one"))
	require.NoError(t, err)
	p2, err := store.Put(context.Background(), "f.txt", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.True(t, strings.HasSuffix(p1, "-f.txt"))

	d1, _ := os.ReadFile(p1)
	d2, _ := os.ReadFile(p2)
	assert.Equal(t, "one", string(d1))
	assert.Equal(t, "two", string(d2))
}

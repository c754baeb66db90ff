package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "directorAI_history")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "directorAI_history", `[{"id":"1"}]`))
	v, err := kv.Get(ctx, "directorAI_history")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, v)

	require.NoError(t, kv.Set(ctx, "directorAI_history", `[]`))
	v, err = kv.Get(ctx, "directorAI_history")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	require.NoError(t, kv.Delete(ctx, "directorAI_history"))
	_, err = kv.Get(ctx, "directorAI_history")
	require.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is not an error
	require.NoError(t, kv.Delete(ctx, "directorAI_history"))

	for _, bad := range []string{"", "../escape", "a/b", "spaced key"} {
		require.ErrorIs(t, kv.Set(ctx, bad, "x"), ErrInvalidKey, "key %q", bad)
		_, err := kv.Get(ctx, bad)
		require.ErrorIs(t, err, ErrInvalidKey, "key %q", bad)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseKV(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	exerciseKV(t, fs)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "directorAI_language", `"en"`))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	v, err := second.Get(ctx, "directorAI_language")
	require.NoError(t, err)
	assert.Equal(t, `"en"`, v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "directorAI_language.json", entries[0].Name())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStore(rdb, DefaultRedisPrefix)
	defer s.Close()

	exerciseKV(t, s)

	require.NoError(t, s.Set(context.Background(), "directorAI_settings", `{}`))
	assert.True(t, mr.Exists(DefaultRedisPrefix+"directorAI_settings"))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, kv)

	dir := t.TempDir()
	kv, err = Open(ctx, "file://"+dir)
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, kv)
	assert.Equal(t, dir, kv.(*FileStore).Dir())

	kv, err = Open(ctx, dir)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, kv)

	mr := miniredis.RunT(t)
	kv, err = Open(ctx, "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	require.IsType(t, &RedisStore{}, kv)
	_ = kv.(*RedisStore).Close()

	_, err = Open(ctx, "s3://bucket/key")
	require.Error(t, err)
}

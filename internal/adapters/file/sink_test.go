package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/confgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_NewFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, NewSink().Write(context.Background(), path, "x"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestSink_WritesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer"), 0600))

	sink := NewSink()
	require.NoError(t, sink.Write(context.Background(), path, "Hello World!"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "existing mode is kept")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestSink_WritesThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(realDir, 0755))
	target := filepath.Join(realDir, "app.conf")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0640))
	link := filepath.Join(dir, "app.conf")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	require.NoError(t, NewSink().Write(context.Background(), link, "new"))

	linfo, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink, "link is not replaced")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())

	entries, err := os.ReadDir(realDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file lands beside the target")
}

func TestSink_DirectoryTarget(t *testing.T) {
	err := NewSink().Write(context.Background(), t.TempDir(), "x")
	assert.ErrorIs(t, err, domain.ErrOutputWrite)
}

func TestSink_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	err := NewSink().Write(context.Background(), path, "x")
	assert.ErrorIs(t, err, domain.ErrOutputWrite)
}

func TestSink_EmptyPath(t *testing.T) {
	err := NewSink().Write(context.Background(), "", "x")
	assert.ErrorIs(t, err, domain.ErrOutputWrite)
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&WriterSink{W: &buf}).Write(context.Background(), "ignored", "text"))
	assert.Equal(t, "text", buf.String())
}

package source_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/mohorko/zeeklog/source"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func gzipped(t *testing.T, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, content string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	return enc.EncodeAll([]byte(content), nil)
}

func TestResolve(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	writeFile(t, dir, "conn.2.log", nil)
	writeFile(t, dir, "conn.1.log", nil)
	writeFile(t, dir, "dns.log", nil)

	files, err := source.Resolve(filepath.Join(dir, "conn.*.log"))
	r.NoError(err)
	r.Equal([]string{
		filepath.Join(dir, "conn.1.log"),
		filepath.Join(dir, "conn.2.log"),
	}, files)
}

func TestResolve_NoMatches(t *testing.T) {
	_, err := source.Resolve(filepath.Join(t.TempDir(), "*.log"))
	require.ErrorIs(t, err, source.ErrNoMatches)
}

func TestOpenFile(t *testing.T) {
	const content = "#fields\ta\n#types\tstring\nx\n"

	dir := t.TempDir()
	testCases := []struct {
		name string
		path string
	}{
		{name: "plain", path: writeFile(t, dir, "plain.log", []byte(content))},
		{name: "gzip", path: writeFile(t, dir, "rotated.log.gz", gzipped(t, content))},
		{name: "zstd", path: writeFile(t, dir, "rotated.log.zst", zstded(t, content))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := require.New(t)

			handle, err := source.OpenFile(tc.path)
			r.NoError(err)

			got, err := io.ReadAll(handle)
			r.NoError(err)
			r.Equal(content, string(got))

			r.NoError(handle.Close())
		})
	}
}

func TestOpenFile_Empty(t *testing.T) {
	r := require.New(t)

	path := writeFile(t, t.TempDir(), "empty.log", nil)

	handle, err := source.OpenFile(path)
	r.NoError(err)
	defer handle.Close()

	got, err := io.ReadAll(handle)
	r.NoError(err)
	r.Empty(got)
}

func TestOpenFile_Missing(t *testing.T) {
	_, err := source.OpenFile(filepath.Join(t.TempDir(), "gone.log"))
	require.Error(t, err)
}

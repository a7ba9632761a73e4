package installer

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTarGz builds a small release-style archive: a top-level directory
// holding the tool binary plus a README.
func writeTarGz(t *testing.T, path, toolName string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)

	files := []struct {
		name string
		mode int64
		body string
	}{
		{toolName + "-1.0.0/README.md", 0644, "docs"},
		{toolName + "-1.0.0/" + toolName, 0755, "#!/bin/sh\necho ok\n"},
	}
	for _, file := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: file.name,
			Mode: file.mode,
			Size: int64(len(file.body)),
		}))
		_, err := tw.Write([]byte(file.body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
}

func TestExtractExecutableFromTarGz(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "mytool-1.0.0-linux_amd64.tar.gz")
	writeTarGz(t, archive, "mytool")

	binary, err := extractExecutable(archive, dir, "mytool")
	require.NoError(t, err)
	assert.Equal(t, "mytool", filepath.Base(binary))

	info, err := os.Stat(binary)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0111)
}

func TestExtractExecutableFromZip(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "mytool-1.0.0.zip")

	f, err := os.Create(archive)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	hdr := &zip.FileHeader{Name: "mytool-1.0.0/mytool", Method: zip.Deflate}
	hdr.SetMode(0755)
	w, err := zw.CreateHeader(hdr)
	require.NoError(t, err)
	_, err = w.Write([]byte("#!/bin/sh\necho ok\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	binary, err := extractExecutable(archive, dir, "mytool")
	require.NoError(t, err)
	assert.Equal(t, "mytool", filepath.Base(binary))
}

func TestExtractArchiveRejectsUnknownFormat(t *testing.T) {
	_, err := extractArchive("tool.rar", t.TempDir())
	assert.Error(t, err)
}

func TestFirstPathSegment(t *testing.T) {
	assert.Equal(t, "tool-1.0.0", firstPathSegment("tool-1.0.0/bin/tool"))
	assert.Equal(t, "tool", firstPathSegment("./tool"))
	assert.Equal(t, "tool", firstPathSegment("tool"))
}

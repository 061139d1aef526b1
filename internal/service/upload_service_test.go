package service

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartFile builds a real multipart upload so Save sees the same types
// the HTTP layer hands it.
func multipartFile(t *testing.T, filename, content string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("document", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	headers := form.File["document"]
	require.Len(t, headers, 1)

	file, err := headers[0].Open()
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	return file, headers[0]
}

func TestUploadService_Save(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewUploadService(dir)
	require.NoError(t, err)

	file, header := multipartFile(t, "passport.png", "fake image bytes")

	path, err := svc.Save(file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.NotContains(t, path, "passport", "original filename must not leak")

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(stored))
}

func TestUploadService_RejectsUnsupportedExtension(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	file, header := multipartFile(t, "malware.exe", "nope")

	_, err = svc.Save(file, header)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestUploadService_UniqueNames(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	fileA, headerA := multipartFile(t, "scan.pdf", "a")
	fileB, headerB := multipartFile(t, "scan.pdf", "b")

	pathA, err := svc.Save(fileA, headerA)
	require.NoError(t, err)
	pathB, err := svc.Save(fileB, headerB)
	require.NoError(t, err)

	assert.NotEqual(t, pathA, pathB)
}

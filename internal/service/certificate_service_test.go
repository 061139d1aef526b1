package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateService_Render(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewCertificateService(dir)
	require.NoError(t, err)

	data := CertificateData{
		RecordID:    7,
		PatientName: "Jane Doe",
		VaccineName: "MMR",
		DoseNo:      2,
		GivenOn:     time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
		IssuerName:  "Dr. Smith",
	}

	path, err := svc.Render(data)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "certificate_7.pdf"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestCertificateService_RenderOverwrites(t *testing.T) {
	svc, err := NewCertificateService(t.TempDir())
	require.NoError(t, err)

	data := CertificateData{RecordID: 1, PatientName: "Jane Doe", VaccineName: "MMR", DoseNo: 1, GivenOn: time.Now(), IssuerName: "Dr. Smith"}

	first, err := svc.Render(data)
	require.NoError(t, err)

	data.PatientName = "Jane A. Doe"
	second, err := svc.Render(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	info, err := os.Stat(second)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCertificateService_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "certificates")
	_, err := NewCertificateService(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

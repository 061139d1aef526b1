package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// CertificateData carries the joined names needed to render a certificate.
type CertificateData struct {
	RecordID    int
	PatientName string
	VaccineName string
	DoseNo      int
	GivenOn     time.Time
	IssuerName  string
}

// CertificateService renders vaccination certificates as PDF files keyed by
// record id. Rendering the same record again overwrites the previous file,
// so regeneration is idempotent.
type CertificateService struct {
	dir string
}

func NewCertificateService(dir string) (*CertificateService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create certificates directory: %w", err)
	}
	return &CertificateService{dir: dir}, nil
}

// Path returns the on-disk location for a record's certificate.
func (s *CertificateService) Path(recordID int) string {
	return filepath.Join(s.dir, fmt.Sprintf("certificate_%d.pdf", recordID))
}

// Render writes the certificate PDF and returns its path. It returns only
// after the document has been fully flushed to disk.
func (s *CertificateService) Render(data CertificateData) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 16, "Vaccination Certificate", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(50, 10, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 10, value, "", 1, "L", false, 0, "")
	}

	line("Patient", data.PatientName)
	line("Vaccine", data.VaccineName)
	line("Dose", fmt.Sprintf("%d", data.DoseNo))
	line("Administered on", data.GivenOn.Format("02 Jan 2006 15:04"))
	line("Issued by", data.IssuerName)

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This certificate confirms that the patient named above received the stated vaccine dose at a registered vaccination center.", "", "L", false)

	path := s.Path(data.RecordID)
	// OutputFileAndClose closes the underlying file after writing, so the
	// PDF is fully on disk before the path is handed back to the caller.
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}

	return path, nil
}

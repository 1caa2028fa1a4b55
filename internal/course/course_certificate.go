package course

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCertificatesDir = "storage/certificates"

func certificatesDir() string {
	if dir := os.Getenv("CERTIFICATES_DIR"); dir != "" {
		return dir
	}
	return defaultCertificatesDir
}

// RenderCertificate writes the certificate PDF for a completion and
// records its path. Idempotent: re-rendering an already materialized
// certificate just overwrites the same file.
func (s *service) RenderCertificate(ctx context.Context, completionID string) (string, error) {
	cid, err := uuid.Parse(completionID)
	if err != nil {
		return "", ErrCompletionNotFound
	}

	comp, err := s.repo.FindCompletionByID(ctx, cid)
	if err != nil {
		return "", ErrCompletionNotFound
	}

	c, err := s.repo.FindByID(ctx, comp.CourseID)
	if err != nil {
		return "", ErrCourseNotFound
	}

	employeeName := ""
	if emp, err := s.dir.Get(ctx, comp.EmployeeID); err == nil {
		employeeName = emp.FullName
	}

	pdf, err := report.BuildTextPDF(certificateLines(c.Title, employeeName, comp))
	if err != nil {
		return "", err
	}

	dir := certificatesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, comp.CertificateCode+".pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", err
	}

	comp.CertificatePath = path
	if err := s.repo.UpdateCompletion(ctx, comp); err != nil {
		return "", err
	}

	s.logger.Info("certificate rendered",
		zap.String("completion_id", comp.ID.String()),
		zap.String("certificate_code", comp.CertificateCode),
		zap.String("path", path),
	)
	return path, nil
}

func certificateLines(courseTitle, employeeName string, comp *Completion) []string {
	return []string{
		"CERTIFICADO DE CONCLUSÃO",
		"",
		fmt.Sprintf("Certificamos que %s", employeeName),
		fmt.Sprintf("concluiu o curso %q", courseTitle),
		fmt.Sprintf("em %s.", comp.CompletedAt.Format("02/01/2006")),
		"",
		fmt.Sprintf("Código de validação: %s", comp.CertificateCode),
		fmt.Sprintf("Emitido em %s", time.Now().Format("02/01/2006")),
	}
}

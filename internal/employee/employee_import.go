package employee

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	employeeerrors "github.com/Marllon-hub/hospital-plataforma/internal/employee/errors"
	"github.com/Marllon-hub/hospital-plataforma/internal/events"
	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka"
	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const maxImportErrorSamples = 10

// headerSynonyms maps normalized CSV column names, as exported by the
// hospital's legacy spreadsheets, onto canonical field keys.
var headerSynonyms = map[string]string{
	"nome":            "full_name",
	"nome completo":   "full_name",
	"funcionario":     "full_name",
	"cpf":             "cpf",
	"telefone":        "phone",
	"celular":         "phone",
	"email":           "email",
	"e-mail":          "email",
	"matricula":       "registration",
	"registro":        "registration",
	"setor":           "department",
	"departamento":    "department",
	"cargo":           "position",
	"funcao":          "position",
	"admissao":        "admission_date",
	"data admissao":   "admission_date",
	"data de admissao": "admission_date",
	"nascimento":       "birth_date",
	"data nascimento":  "birth_date",
	"data de nascimento": "birth_date",
	"vinculo":       "employment_type",
	"carga horaria": "weekly_hours",
	"observacoes":   "notes",
	"obs":           "notes",
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader lowercases, strips accents and collapses separators so
// "Data de Admissão" and "data_admissao" resolve identically.
func normalizeHeader(raw string) string {
	s, _, err := transform.String(accentStripper, raw)
	if err != nil {
		s = raw
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// onCallPosition flags job titles that imply the 24h rotation: physicians
// and anyone whose title carries "plantão".
func onCallPosition(position string) bool {
	p, _, err := transform.String(accentStripper, position)
	if err != nil {
		p = position
	}
	p = strings.ToUpper(p)
	return strings.Contains(p, "MEDIC") || strings.Contains(p, "PLANT")
}

// ImportCSV loads employees from a legacy spreadsheet export. Rows with
// an invalid CPF are counted and sampled, rows whose CPF already exists
// are skipped, and everything else is inserted in one transaction. The
// initial password is the CPF itself; staff are told to change it on
// first login.
func (s *service) ImportCSV(ctx context.Context, data []byte, actorID string) (ImportSummary, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.Comma = detectDelimiter(data)

	header, err := reader.Read()
	if err != nil {
		return ImportSummary{}, employeeerrors.ErrEmptyImportFile
	}

	columns := make(map[string]int)
	for i, col := range header {
		if key, ok := headerSynonyms[normalizeHeader(col)]; ok {
			if _, taken := columns[key]; !taken {
				columns[key] = i
			}
		}
	}
	if _, ok := columns["full_name"]; !ok {
		return ImportSummary{}, employeeerrors.ErrMissingImportColumns
	}
	if _, ok := columns["cpf"]; !ok {
		return ImportSummary{}, employeeerrors.ErrMissingImportColumns
	}

	var summary ImportSummary
	var toInsert []Employee
	seen := make(map[string]bool)
	rowNum := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			summary.Failed++
			summary.addError(fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		field := func(key string) string {
			idx, ok := columns[key]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		fullName := field("full_name")
		cpf := CleanCPF(field("cpf"))

		if fullName == "" {
			summary.Failed++
			summary.addError(fmt.Sprintf("row %d: missing name", rowNum))
			continue
		}
		if len(cpf) != 11 {
			summary.Failed++
			summary.addError(fmt.Sprintf("row %d: invalid CPF %q", rowNum, field("cpf")))
			continue
		}
		if seen[cpf] {
			summary.Skipped++
			continue
		}
		seen[cpf] = true

		exists, err := s.repo.ExistsByCPF(ctx, cpf)
		if err != nil {
			return ImportSummary{}, err
		}
		if exists {
			summary.Skipped++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(cpf), bcrypt.DefaultCost)
		if err != nil {
			return ImportSummary{}, err
		}

		position := field("position")
		emp := Employee{
			ID:             uuid.New(),
			FullName:       fullName,
			CPF:            cpf,
			PasswordHash:   string(hash),
			Role:           "FUNCIONARIO",
			Status:         StatusActive,
			Phone:          field("phone"),
			Email:          field("email"),
			Registration:   field("registration"),
			Position:       position,
			EmploymentType: field("employment_type"),
			WeeklyHours:    field("weekly_hours"),
			Notes:          field("notes"),
			ShiftPolicy:    schedule.PolicyWeekday9to5,
		}

		if d, err := parseImportDate(field("admission_date")); err == nil {
			emp.AdmissionDate = d
		}
		if d, err := parseImportDate(field("birth_date")); err == nil {
			emp.BirthDate = d
		}

		if onCallPosition(position) {
			today := time.Now().In(time.Local)
			anchor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
			emp.ShiftPolicy = schedule.PolicyRotating24On96Off
			emp.RotationAnchor = &anchor
		}

		toInsert = append(toInsert, emp)
	}

	if len(toInsert) > 0 {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			qtx := s.repo.WithTx(tx)
			for i := range toInsert {
				if err := qtx.Create(ctx, &toInsert[i]); err != nil {
					if isUniqueViolation(err) {
						summary.Skipped++
						continue
					}
					return err
				}
				summary.Imported++
			}
			return s.enqueueImportedEvent(ctx, tx, summary, actorID)
		})
		if err != nil {
			return ImportSummary{}, err
		}
	}

	s.invalidateOptions(ctx)

	s.logger.Info("employee import finished",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (sum *ImportSummary) addError(msg string) {
	if len(sum.ErrorSamples) < maxImportErrorSamples {
		sum.ErrorSamples = append(sum.ErrorSamples, msg)
	}
}

// detectDelimiter sniffs the first line; the legacy exports use either
// commas or semicolons depending on the spreadsheet locale.
func detectDelimiter(data []byte) rune {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}

// parseImportDate accepts both ISO and Brazilian day-first dates.
func parseImportDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty date")
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006", "02-01-2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", raw)
}

func (s *service) enqueueImportedEvent(ctx context.Context, tx *gorm.DB, summary ImportSummary, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	importID := uuid.New().String()
	payload, err := json.Marshal(events.EmployeeImportedEvent{
		ImportID:   importID,
		Added:      summary.Imported,
		Duplicates: summary.Skipped,
		Invalid:    summary.Failed,
		ImportedBy: actorID,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee_import",
		AggregateID:   importID,
		EventType:     events.TypeEmployeeImported,
		Topic:         events.TopicEmployeeImported,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

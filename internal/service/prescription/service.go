package prescription

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-desk/internal/document"
	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
)

// Renderer produces a document from a named page.
type Renderer interface {
	Render(ctx context.Context, name string, data interface{}) ([]byte, error)
}

// Document is a rendered prescription ready to download.
type Document struct {
	Filename string
	Content  []byte
}

// PrintData is what the prescription page is executed with. Patient is nil
// when the referenced patient does not exist.
type PrintData struct {
	Prescription *model.Prescription
	Patient      *model.Patient
}

type Service struct {
	repo     repository.PrescriptionRepository
	patients repository.PatientRepository
	renderer Renderer
}

func NewService(repo repository.PrescriptionRepository, patients repository.PatientRepository, renderer Renderer) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		renderer: renderer,
	}
}

func (s *Service) IssuePrescription(ctx context.Context, patientID int64, form *model.PrescriptionForm) (*model.Prescription, error) {
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		return nil, err
	}

	prescription := form.Prescription(patientID)
	if err := s.repo.Create(ctx, prescription); err != nil {
		return nil, fmt.Errorf("failed to issue prescription: %w", err)
	}

	log.Info().
		Int64("prescription_id", prescription.ID).
		Int64("patient_id", patientID).
		Msg("prescription issued")
	return prescription, nil
}

// PrintPrescription renders the prescription to PDF. A missing prescription is
// NotFound before anything is rendered.
func (s *Service) PrintPrescription(ctx context.Context, id int64) (*Document, error) {
	prescription, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	data := PrintData{Prescription: prescription}
	patient, err := s.patients.Get(ctx, prescription.PatientID)
	switch {
	case err == nil:
		data.Patient = patient
	case !apperrors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	content, err := s.renderer.Render(ctx, document.PrescriptionTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("failed to print prescription %d: %w", id, err)
	}

	return &Document{
		Filename: document.Filename(id),
		Content:  content,
	}, nil
}

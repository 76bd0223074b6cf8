package appointment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
)

type Service struct {
	repo     repository.AppointmentRepository
	patients repository.PatientRepository
}

func NewService(repo repository.AppointmentRepository, patients repository.PatientRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
	}
}

// BookAppointment records a visit for an existing patient. The store does not
// enforce the reference, so the patient is looked up first.
func (s *Service) BookAppointment(ctx context.Context, patientID int64, form *model.AppointmentForm) (*model.Appointment, error) {
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		return nil, err
	}

	appointment := form.Appointment(patientID)
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	log.Info().
		Int64("appointment_id", appointment.ID).
		Int64("patient_id", patientID).
		Msg("appointment booked")
	return appointment, nil
}

func (s *Service) SearchAppointments(ctx context.Context, query string) ([]*model.AppointmentMatch, error) {
	return s.repo.Search(ctx, query)
}

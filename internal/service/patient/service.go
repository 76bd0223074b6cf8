package patient

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
)

type Service struct {
	repo          repository.PatientRepository
	appointments  repository.AppointmentRepository
	prescriptions repository.PrescriptionRepository
}

func NewService(repo repository.PatientRepository, appointments repository.AppointmentRepository, prescriptions repository.PrescriptionRepository) *Service {
	return &Service{
		repo:          repo,
		appointments:  appointments,
		prescriptions: prescriptions,
	}
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) SearchPatients(ctx context.Context, query string) ([]*model.Patient, error) {
	return s.repo.Search(ctx, query)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

// RegisterPatient stores a new patient and returns it with the identifier the
// store assigned.
func (s *Service) RegisterPatient(ctx context.Context, form *model.PatientForm) (*model.Patient, error) {
	patient := form.Patient()
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}

	log.Info().Int64("patient_id", patient.ID).Msg("patient registered")
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id int64, form *model.PatientForm) (*model.Patient, error) {
	patient := form.Patient()
	patient.ID = id
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	log.Info().Int64("patient_id", id).Msg("patient updated")
	return patient, nil
}

// GetChart loads a patient together with their appointments and
// prescriptions.
func (s *Service) GetChart(ctx context.Context, id int64) (*model.PatientChart, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	appointments, err := s.appointments.ListByPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	prescriptions, err := s.prescriptions.ListByPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.PatientChart{
		Patient:       patient,
		Appointments:  appointments,
		Prescriptions: prescriptions,
	}, nil
}

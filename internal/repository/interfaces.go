package repository

import (
	"context"

	"github.com/jwalitptl/clinic-desk/internal/model"
)

// All repository interfaces in one file.
//
// Lookups of a missing identifier return an errors.ErrNotFound AppError;
// driver failures return errors.ErrStorage.
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id int64) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		List(ctx context.Context) ([]*model.Patient, error)
		Search(ctx context.Context, query string) ([]*model.Patient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		ListByPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error)
		Search(ctx context.Context, query string) ([]*model.AppointmentMatch, error)
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, prescription *model.Prescription) error
		Get(ctx context.Context, id int64) (*model.Prescription, error)
		ListByPatient(ctx context.Context, patientID int64) ([]*model.Prescription, error)
	}
)

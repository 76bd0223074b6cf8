package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
	"github.com/jwalitptl/clinic-desk/pkg/metrics"
)

var (
	selectPrescriptions = selectFrom(tablePrescriptions, prescriptionColumns)
	insertPrescription  = insertReturningID(tablePrescriptions,
		prescriptionPatientID, prescriptionDoctor, prescriptionDate,
		prescriptionMedication, prescriptionDosage, prescriptionInstructions, prescriptionTimestamp)
)

type prescriptionRepository struct {
	baseRepository
}

func NewPrescriptionRepository(db *sqlx.DB, m *metrics.Metrics) repository.PrescriptionRepository {
	return &prescriptionRepository{baseRepository: newBaseRepository(db, m)}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	prescription.Timestamp = r.timestamp()

	id, err := r.insert(ctx, "insert prescription", insertPrescription,
		prescription.PatientID,
		prescription.Doctor,
		prescription.Date,
		prescription.Medication,
		prescription.Dosage,
		prescription.Instructions,
		prescription.Timestamp,
	)
	if err != nil {
		return err
	}
	prescription.ID = id
	return nil
}

func (r *prescriptionRepository) Get(ctx context.Context, id int64) (*model.Prescription, error) {
	var prescription model.Prescription
	query := selectPrescriptions + " WHERE id = ?"
	if err := r.get(ctx, "get prescription", "prescription", &prescription, query, id); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Prescription, error) {
	prescriptions := []*model.Prescription{}
	query := selectPrescriptions + ` WHERE patient_id = ? ORDER BY "date", id`
	if err := r.selectRows(ctx, "list prescriptions", &prescriptions, query, patientID); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

package sqldb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
	"github.com/jwalitptl/clinic-desk/pkg/metrics"
)

var (
	selectPatients = selectFrom(tablePatients, patientColumns)
	insertPatient  = insertReturningID(tablePatients,
		patientName, patientPhone, patientDOB, patientGender, patientAddress, patientTimestamp)
	updatePatient = updateByID(tablePatients,
		patientName, patientDOB, patientAddress, patientPhone, patientGender, patientTimestamp)
)

type patientRepository struct {
	baseRepository
}

func NewPatientRepository(db *sqlx.DB, m *metrics.Metrics) repository.PatientRepository {
	return &patientRepository{baseRepository: newBaseRepository(db, m)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	patient.Timestamp = r.timestamp()

	id, err := r.insert(ctx, "insert patient", insertPatient,
		patient.Name,
		patient.Phone,
		patient.DOB,
		patient.Gender,
		patient.Address,
		patient.Timestamp,
	)
	if err != nil {
		return err
	}
	patient.ID = id
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	var patient model.Patient
	query := selectPatients + " WHERE id = ?"
	if err := r.get(ctx, "get patient", "patient", &patient, query, id); err != nil {
		return nil, err
	}
	return &patient, nil
}

// Update overwrites every mutable field and stamps the row with the current
// time.
func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	patient.Timestamp = r.timestamp()

	return r.execOne(ctx, "update patient", "patient", updatePatient,
		patient.Name,
		patient.DOB,
		patient.Address,
		patient.Phone,
		patient.Gender,
		patient.Timestamp,
		patient.ID,
	)
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	patients := []*model.Patient{}
	if err := r.selectRows(ctx, "list patients", &patients, selectPatients+" ORDER BY id"); err != nil {
		return nil, err
	}
	return patients, nil
}

// Search matches a substring of the name, or the exact phone number, or the
// exact identifier when the query is numeric.
func (r *patientRepository) Search(ctx context.Context, query string) ([]*model.Patient, error) {
	where := fmt.Sprintf(r.dialect.substr, ident("", patientName)) + " OR " + ident("", patientPhone) + " = ?"
	args := []interface{}{query, query}

	if id, err := strconv.ParseInt(query, 10, 64); err == nil {
		where += " OR " + ident("", patientID) + " = ?"
		args = append(args, id)
	}

	patients := []*model.Patient{}
	stmt := selectPatients + " WHERE " + where + " ORDER BY id"
	if err := r.selectRows(ctx, "search patients", &patients, stmt, args...); err != nil {
		return nil, err
	}
	return patients, nil
}

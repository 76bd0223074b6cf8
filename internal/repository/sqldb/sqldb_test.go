package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-desk/internal/config"
	"github.com/jwalitptl/clinic-desk/internal/model"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := NewDB(config.DatabaseConfig{Driver: DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func newPatientRepo(db *sqlx.DB) *patientRepository {
	r := NewPatientRepository(db, nil).(*patientRepository)
	r.now = func() time.Time { return fixedNow }
	return r
}

func newAppointmentRepo(db *sqlx.DB) *appointmentRepository {
	r := NewAppointmentRepository(db, nil).(*appointmentRepository)
	r.now = func() time.Time { return fixedNow }
	return r
}

func newPrescriptionRepo(db *sqlx.DB) *prescriptionRepository {
	r := NewPrescriptionRepository(db, nil).(*prescriptionRepository)
	r.now = func() time.Time { return fixedNow }
	return r
}

func createPatient(t *testing.T, r *patientRepository, name, phone string) *model.Patient {
	t.Helper()

	p := &model.Patient{
		Name:    name,
		DOB:     "1980-04-12",
		Gender:  "male",
		Phone:   phone,
		Address: "12 Harbour Road",
	}
	require.NoError(t, r.Create(context.Background(), p))
	return p
}

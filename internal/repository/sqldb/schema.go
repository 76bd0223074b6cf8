package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func (d dialect) schema() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS patients (
			id %s,
			name TEXT NOT NULL,
			dob TEXT NOT NULL,
			gender TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			"timestamp" TEXT NOT NULL
		)`, d.serial),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS appointments (
			id %s,
			patient_id %s NOT NULL,
			doctor TEXT NOT NULL,
			"date" TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			"timestamp" TEXT NOT NULL
		)`, d.serial, d.bigint),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS prescriptions (
			id %s,
			patient_id %s NOT NULL,
			doctor TEXT NOT NULL,
			"date" TEXT NOT NULL,
			medication TEXT NOT NULL,
			dosage TEXT NOT NULL,
			instructions TEXT NOT NULL DEFAULT '',
			"timestamp" TEXT NOT NULL
		)`, d.serial, d.bigint),
		`CREATE INDEX IF NOT EXISTS idx_appointments_patient_id ON appointments (patient_id)`,
		`CREATE INDEX IF NOT EXISTS idx_prescriptions_patient_id ON prescriptions (patient_id)`,
	}
}

// EnsureSchema creates the three record tables when they are absent. It is
// safe to run on every start.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	d := dialectFor(db.DriverName())
	for _, stmt := range d.schema() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	log.Debug().Str("dialect", d.name).Msg("database schema ready")
	return nil
}

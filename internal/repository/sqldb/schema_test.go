package sqldb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-desk/internal/config"
)

func TestEnsureSchemaIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, EnsureSchema(context.Background(), db))

	var tables []string
	require.NoError(t, db.Select(&tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('patients', 'appointments', 'prescriptions') ORDER BY name`))
	assert.Equal(t, []string{"appointments", "patients", "prescriptions"}, tables)
}

func TestNewDBRejectsUnknownDriver(t *testing.T) {
	_, err := NewDB(config.DatabaseConfig{Driver: "mysql", DSN: "clinic"})
	assert.ErrorContains(t, err, `unsupported database driver "mysql"`)
}

func TestStatementBuilders(t *testing.T) {
	assert.Equal(t,
		`INSERT INTO patients ("name", "phone") VALUES (?, ?) RETURNING id`,
		insertReturningID(tablePatients, patientName, patientPhone))
	assert.Equal(t,
		`UPDATE patients SET "name" = ?, "gender" = ?, "timestamp" = ? WHERE id = ?`,
		updateByID(tablePatients, patientName, patientGender, patientTimestamp))
	assert.Equal(t, `a."date", a."id"`, columnList("a", []appointmentColumn{appointmentDate, appointmentID}))
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, postgresDialect, dialectFor("postgres"))
	assert.Equal(t, sqliteDialect, dialectFor("sqlite"))
}

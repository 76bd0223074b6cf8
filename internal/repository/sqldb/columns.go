package sqldb

import (
	"fmt"
	"strings"
)

// Each table has its own column type so a statement can only be built from
// columns declared for that table; a typo or a foreign column fails to
// compile instead of failing at query time.
type (
	patientColumn      string
	appointmentColumn  string
	prescriptionColumn string
)

const (
	tablePatients      = "patients"
	tableAppointments  = "appointments"
	tablePrescriptions = "prescriptions"
)

const (
	patientID        patientColumn = "id"
	patientName      patientColumn = "name"
	patientDOB       patientColumn = "dob"
	patientGender    patientColumn = "gender"
	patientPhone     patientColumn = "phone"
	patientAddress   patientColumn = "address"
	patientTimestamp patientColumn = "timestamp"
)

const (
	appointmentID        appointmentColumn = "id"
	appointmentPatientID appointmentColumn = "patient_id"
	appointmentDoctor    appointmentColumn = "doctor"
	appointmentDate      appointmentColumn = "date"
	appointmentReason    appointmentColumn = "reason"
	appointmentTimestamp appointmentColumn = "timestamp"
)

const (
	prescriptionID           prescriptionColumn = "id"
	prescriptionPatientID    prescriptionColumn = "patient_id"
	prescriptionDoctor       prescriptionColumn = "doctor"
	prescriptionDate         prescriptionColumn = "date"
	prescriptionMedication   prescriptionColumn = "medication"
	prescriptionDosage       prescriptionColumn = "dosage"
	prescriptionInstructions prescriptionColumn = "instructions"
	prescriptionTimestamp    prescriptionColumn = "timestamp"
)

var (
	patientColumns = []patientColumn{
		patientID, patientName, patientDOB, patientGender,
		patientPhone, patientAddress, patientTimestamp,
	}
	appointmentColumns = []appointmentColumn{
		appointmentID, appointmentPatientID, appointmentDoctor,
		appointmentDate, appointmentReason, appointmentTimestamp,
	}
	prescriptionColumns = []prescriptionColumn{
		prescriptionID, prescriptionPatientID, prescriptionDoctor, prescriptionDate,
		prescriptionMedication, prescriptionDosage, prescriptionInstructions, prescriptionTimestamp,
	}
)

// ident quotes a column; "date" and "timestamp" are keywords in Postgres.
func ident[C ~string](alias string, col C) string {
	q := `"` + string(col) + `"`
	if alias == "" {
		return q
	}
	return alias + "." + q
}

func columnList[C ~string](alias string, cols []C) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = ident(alias, c)
	}
	return strings.Join(parts, ", ")
}

func selectFrom[C ~string](table string, cols []C) string {
	return fmt.Sprintf("SELECT %s FROM %s", columnList("", cols), table)
}

// insertReturningID builds an insert for cols; the store assigns the id.
func insertReturningID[C ~string](table string, cols ...C) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table, columnList("", cols), marks)
}

// updateByID builds an update of cols for the row with the given id. The id
// is the last bind argument.
func updateByID[C ~string](table string, cols ...C) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = ident("", c) + " = ?"
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(parts, ", "))
}

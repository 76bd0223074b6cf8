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
	selectAppointments = selectFrom(tableAppointments, appointmentColumns)
	insertAppointment  = insertReturningID(tableAppointments,
		appointmentPatientID, appointmentDoctor, appointmentDate, appointmentReason, appointmentTimestamp)
)

type appointmentRepository struct {
	baseRepository
}

func NewAppointmentRepository(db *sqlx.DB, m *metrics.Metrics) repository.AppointmentRepository {
	return &appointmentRepository{baseRepository: newBaseRepository(db, m)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	appointment.Timestamp = r.timestamp()

	id, err := r.insert(ctx, "insert appointment", insertAppointment,
		appointment.PatientID,
		appointment.Doctor,
		appointment.Date,
		appointment.Reason,
		appointment.Timestamp,
	)
	if err != nil {
		return err
	}
	appointment.ID = id
	return nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error) {
	appointments := []*model.Appointment{}
	query := selectAppointments + ` WHERE patient_id = ? ORDER BY "date", id`
	if err := r.selectRows(ctx, "list appointments", &appointments, query, patientID); err != nil {
		return nil, err
	}
	return appointments, nil
}

// Search looks appointments up through their patient: a substring of the
// patient or doctor name, the patient's exact phone number, or, for numeric
// queries, the appointment or patient identifier. Appointments whose patient
// no longer resolves are still found by doctor or identifier.
func (r *appointmentRepository) Search(ctx context.Context, query string) ([]*model.AppointmentMatch, error) {
	stmt := fmt.Sprintf(`SELECT %s, p.name AS patient_name, p.phone AS patient_phone
		FROM appointments a
		LEFT JOIN patients p ON p.id = a.patient_id
		WHERE %s OR %s OR p.phone = ?`,
		columnList("a", appointmentColumns),
		fmt.Sprintf(r.dialect.substr, "p.name"),
		fmt.Sprintf(r.dialect.substr, ident("a", appointmentDoctor)),
	)
	args := []interface{}{query, query, query}

	if id, err := strconv.ParseInt(query, 10, 64); err == nil {
		stmt += fmt.Sprintf(" OR %s = ? OR %s = ?", ident("a", appointmentID), ident("a", appointmentPatientID))
		args = append(args, id, id)
	}
	stmt += fmt.Sprintf(" ORDER BY %s, %s", ident("a", appointmentDate), ident("a", appointmentID))

	matches := []*model.AppointmentMatch{}
	if err := r.selectRows(ctx, "search appointments", &matches, stmt, args...); err != nil {
		return nil, err
	}
	return matches, nil
}

package model

import "database/sql"

type Appointment struct {
	ID        int64  `db:"id" json:"id"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
	Doctor    string `db:"doctor" json:"doctor"`
	Date      string `db:"date" json:"date"`
	Reason    string `db:"reason" json:"reason"`
	Timestamp string `db:"timestamp" json:"timestamp"`
}

type AppointmentForm struct {
	Doctor string `form:"doctor" binding:"required,notblank,max=200"`
	Date   string `form:"date" binding:"required,datetime=2006-01-02"`
	Reason string `form:"reason" binding:"max=1000"`
}

func (f *AppointmentForm) Appointment(patientID int64) *Appointment {
	return &Appointment{
		PatientID: patientID,
		Doctor:    f.Doctor,
		Date:      f.Date,
		Reason:    f.Reason,
	}
}

// AppointmentMatch is a search hit. Patient fields are null when the
// referenced patient does not exist.
type AppointmentMatch struct {
	Appointment
	PatientName  sql.NullString `db:"patient_name" json:"patient_name"`
	PatientPhone sql.NullString `db:"patient_phone" json:"patient_phone"`
}

package model

// TimestampLayout is the stored format of every record timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Patient is a registered person. Identifiers are assigned by the store.
type Patient struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	DOB       string `db:"dob" json:"dob"`
	Gender    string `db:"gender" json:"gender"`
	Phone     string `db:"phone" json:"phone"`
	Address   string `db:"address" json:"address"`
	Timestamp string `db:"timestamp" json:"timestamp"`
}

// PatientForm is submitted by reception when registering a patient and by the
// physician when correcting one.
type PatientForm struct {
	Name    string `form:"name" binding:"required,notblank,max=200"`
	DOB     string `form:"dob" binding:"required,datetime=2006-01-02"`
	Gender  string `form:"gender" binding:"required,notblank,max=32"`
	Phone   string `form:"phone" binding:"required,notblank,max=32"`
	Address string `form:"address" binding:"max=500"`
}

// Patient copies the form onto a record.
func (f *PatientForm) Patient() *Patient {
	return &Patient{
		Name:    f.Name,
		DOB:     f.DOB,
		Gender:  f.Gender,
		Phone:   f.Phone,
		Address: f.Address,
	}
}

// SearchForm carries the free text query of both search pages.
type SearchForm struct {
	Query string `form:"query" binding:"required,max=200"`
}

// PatientChart is a patient with everything recorded against them.
type PatientChart struct {
	Patient       *Patient
	Appointments  []*Appointment
	Prescriptions []*Prescription
}

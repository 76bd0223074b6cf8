package model

type Prescription struct {
	ID           int64  `db:"id" json:"id"`
	PatientID    int64  `db:"patient_id" json:"patient_id"`
	Doctor       string `db:"doctor" json:"doctor"`
	Date         string `db:"date" json:"date"`
	Medication   string `db:"medication" json:"medication"`
	Dosage       string `db:"dosage" json:"dosage"`
	Instructions string `db:"instructions" json:"instructions"`
	Timestamp    string `db:"timestamp" json:"timestamp"`
}

type PrescriptionForm struct {
	Doctor       string `form:"doctor" binding:"required,notblank,max=200"`
	Date         string `form:"date" binding:"required,datetime=2006-01-02"`
	Medication   string `form:"medication" binding:"required,notblank,max=200"`
	Dosage       string `form:"dosage" binding:"required,notblank,max=200"`
	Instructions string `form:"instructions" binding:"max=2000"`
}

func (f *PrescriptionForm) Prescription(patientID int64) *Prescription {
	return &Prescription{
		PatientID:    patientID,
		Doctor:       f.Doctor,
		Date:         f.Date,
		Medication:   f.Medication,
		Dosage:       f.Dosage,
		Instructions: f.Instructions,
	}
}

package physician

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-desk/internal/handler"
	"github.com/jwalitptl/clinic-desk/internal/model"
	prescriptionsvc "github.com/jwalitptl/clinic-desk/internal/service/prescription"
)

type PatientService interface {
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id int64, form *model.PatientForm) (*model.Patient, error)
	GetChart(ctx context.Context, id int64) (*model.PatientChart, error)
}

type PrescriptionService interface {
	IssuePrescription(ctx context.Context, patientID int64, form *model.PrescriptionForm) (*model.Prescription, error)
	PrintPrescription(ctx context.Context, id int64) (*prescriptionsvc.Document, error)
}

// Handler serves the physician pages.
type Handler struct {
	patients      PatientService
	prescriptions PrescriptionService
}

func NewHandler(patients PatientService, prescriptions PrescriptionService) *Handler {
	return &Handler{
		patients:      patients,
		prescriptions: prescriptions,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctor := r.Group("/doctor")
	{
		doctor.GET("", h.ListPatients)
		doctor.GET("/prescriptions/:prescription_id/print", h.PrintPrescription)
		doctor.GET("/:patient_id", h.ViewPatient)
		doctor.GET("/:patient_id/update_patient", h.UpdatePatientForm)
		doctor.POST("/:patient_id/update_patient", h.UpdatePatient)
		doctor.GET("/:patient_id/new_prescription", h.NewPrescriptionForm)
		doctor.POST("/:patient_id/new_prescription", h.CreatePrescription)
	}
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.patients.ListPatients(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "doctor.html", gin.H{
		"Title":    "Physician",
		"Patients": patients,
	})
}

func (h *Handler) ViewPatient(c *gin.Context) {
	id, err := handler.PathID(c, "patient_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	chart, err := h.patients.GetChart(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "doctor_view_patient.html", gin.H{
		"Title": chart.Patient.Name,
		"Chart": chart,
	})
}

// patientPage loads the patient named in the path and renders one of the
// per-patient forms.
func (h *Handler) patientPage(c *gin.Context, template, title string) {
	id, err := handler.PathID(c, "patient_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	patient, err := h.patients.GetPatient(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, template, gin.H{
		"Title":   title,
		"Patient": patient,
	})
}

func (h *Handler) UpdatePatientForm(c *gin.Context) {
	h.patientPage(c, "update_patient.html", "Update patient")
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, err := handler.PathID(c, "patient_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var form model.PatientForm
	if err := handler.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := h.patients.UpdatePatient(c.Request.Context(), id, &form); err != nil {
		_ = c.Error(err)
		return
	}

	handler.SeeOther(c, fmt.Sprintf("/doctor/%d", id))
}

func (h *Handler) NewPrescriptionForm(c *gin.Context) {
	h.patientPage(c, "doctor_new_prescription.html", "New prescription")
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	id, err := handler.PathID(c, "patient_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var form model.PrescriptionForm
	if err := handler.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := h.prescriptions.IssuePrescription(c.Request.Context(), id, &form); err != nil {
		_ = c.Error(err)
		return
	}

	handler.SeeOther(c, fmt.Sprintf("/doctor/%d", id))
}

// PrintPrescription sends the rendered prescription as a PDF attachment.
func (h *Handler) PrintPrescription(c *gin.Context) {
	id, err := handler.PathID(c, "prescription_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	doc, err := h.prescriptions.PrintPrescription(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

package reception

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-desk/internal/handler"
	"github.com/jwalitptl/clinic-desk/internal/model"
)

type PatientService interface {
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	SearchPatients(ctx context.Context, query string) ([]*model.Patient, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
	RegisterPatient(ctx context.Context, form *model.PatientForm) (*model.Patient, error)
	GetChart(ctx context.Context, id int64) (*model.PatientChart, error)
}

type AppointmentService interface {
	BookAppointment(ctx context.Context, patientID int64, form *model.AppointmentForm) (*model.Appointment, error)
	SearchAppointments(ctx context.Context, query string) ([]*model.AppointmentMatch, error)
}

// Handler serves the front-desk pages.
type Handler struct {
	patients     PatientService
	appointments AppointmentService
}

func NewHandler(patients PatientService, appointments AppointmentService) *Handler {
	return &Handler{
		patients:     patients,
		appointments: appointments,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reception := r.Group("/reception")
	{
		reception.GET("", h.ListPatients)
		reception.GET("/search", h.redirectHome)
		reception.POST("/search", h.SearchPatients)
		reception.GET("/new_patient", h.NewPatientForm)
		reception.POST("/new_patient", h.CreatePatient)
		reception.GET("/search_appointment", h.redirectHome)
		reception.POST("/search_appointment", h.SearchAppointments)
		reception.GET("/:patient_id", h.ViewPatient)
		reception.GET("/:patient_id/new_appointment", h.NewAppointmentForm)
		reception.POST("/:patient_id/new_appointment", h.CreateAppointment)
	}
}

func listPage(patients []*model.Patient) gin.H {
	return gin.H{
		"Title":             "Reception",
		"Patients":          patients,
		"Query":             "",
		"AppointmentQuery":  "",
		"Created":           int64(0),
		"Appointments":      nil,
		"AppointmentSearch": false,
	}
}

// ListPatients shows every patient. After registration the new identifier
// arrives as ?created=<id> and is shown in a banner.
func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.patients.ListPatients(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	page := listPage(patients)
	if created, err := strconv.ParseInt(c.Query("created"), 10, 64); err == nil && created > 0 {
		page["Created"] = created
	}
	c.HTML(http.StatusOK, "reception.html", page)
}

func (h *Handler) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/reception")
}

func (h *Handler) SearchPatients(c *gin.Context) {
	var form model.SearchForm
	if err := handler.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	patients, err := h.patients.SearchPatients(c.Request.Context(), form.Query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	page := listPage(patients)
	page["Query"] = form.Query
	c.HTML(http.StatusOK, "reception.html", page)
}

func (h *Handler) NewPatientForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_patient.html", gin.H{"Title": "New patient"})
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var form model.PatientForm
	if err := handler.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	patient, err := h.patients.RegisterPatient(c.Request.Context(), &form)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.SeeOther(c, fmt.Sprintf("/reception?created=%d", patient.ID))
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

	c.HTML(http.StatusOK, "view_patient.html", gin.H{
		"Title": chart.Patient.Name,
		"Chart": chart,
	})
}

func (h *Handler) NewAppointmentForm(c *gin.Context) {
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

	c.HTML(http.StatusOK, "new_appointment.html", gin.H{
		"Title":   "New appointment",
		"Patient": patient,
	})
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	id, err := handler.PathID(c, "patient_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var form model.AppointmentForm
	if err := handler.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := h.appointments.BookAppointment(c.Request.Context(), id, &form); err != nil {
		_ = c.Error(err)
		return
	}

	handler.SeeOther(c, fmt.Sprintf("/reception/%d", id))
}

func (h *Handler) SearchAppointments(c *gin.Context) {
	var form model.SearchForm
	if err := handler.BindForm(c, &form); err != nil {
		_ = c.Error(err)
		return
	}

	matches, err := h.appointments.SearchAppointments(c.Request.Context(), form.Query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	page := listPage(nil)
	page["AppointmentQuery"] = form.Query
	page["Appointments"] = matches
	page["AppointmentSearch"] = true
	c.HTML(http.StatusOK, "reception.html", page)
}

// Package app wires repositories, services and handlers into a router.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-desk/internal/config"
	"github.com/jwalitptl/clinic-desk/internal/document"
	"github.com/jwalitptl/clinic-desk/internal/handler"
	"github.com/jwalitptl/clinic-desk/internal/handler/physician"
	"github.com/jwalitptl/clinic-desk/internal/handler/reception"
	"github.com/jwalitptl/clinic-desk/internal/repository/sqldb"
	"github.com/jwalitptl/clinic-desk/internal/router"
	appointmentService "github.com/jwalitptl/clinic-desk/internal/service/appointment"
	patientService "github.com/jwalitptl/clinic-desk/internal/service/patient"
	prescriptionService "github.com/jwalitptl/clinic-desk/internal/service/prescription"
	"github.com/jwalitptl/clinic-desk/pkg/metrics"
	"github.com/jwalitptl/clinic-desk/web"
)

// New builds the HTTP handler for the clinic desk on an open database.
func New(cfg config.Config, db *sqlx.DB, converter document.Converter) (*gin.Engine, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New("clinic")
	}

	// Repositories
	patientRepo := sqldb.NewPatientRepository(db, m)
	appointmentRepo := sqldb.NewAppointmentRepository(db, m)
	prescriptionRepo := sqldb.NewPrescriptionRepository(db, m)

	// Services
	renderer := document.NewRenderer(templates, converter, m)
	patientSvc := patientService.NewService(patientRepo, appointmentRepo, prescriptionRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo)
	prescriptionSvc := prescriptionService.NewService(prescriptionRepo, patientRepo, renderer)

	// Handlers
	h := handler.NewHandler(db, nil)
	if m != nil {
		h = handler.NewHandler(db, m.Handler())
	}

	r, err := router.NewRouter(cfg, templates, m, h,
		reception.NewHandler(patientSvc, appointmentSvc),
		physician.NewHandler(patientSvc, prescriptionSvc),
	)
	if err != nil {
		return nil, err
	}
	r.Setup()

	return r.Engine(), nil
}

// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/clinic-desk/internal/model"
)

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *PatientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	args := m.Called(ctx, id)
	patient, _ := args.Get(0).(*model.Patient)
	return patient, args.Error(1)
}

func (m *PatientRepository) Update(ctx context.Context, patient *model.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]*model.Patient)
	return patients, args.Error(1)
}

func (m *PatientRepository) Search(ctx context.Context, query string) ([]*model.Patient, error) {
	args := m.Called(ctx, query)
	patients, _ := args.Get(0).([]*model.Patient)
	return patients, args.Error(1)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *AppointmentRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error) {
	args := m.Called(ctx, patientID)
	appointments, _ := args.Get(0).([]*model.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentRepository) Search(ctx context.Context, query string) ([]*model.AppointmentMatch, error) {
	args := m.Called(ctx, query)
	matches, _ := args.Get(0).([]*model.AppointmentMatch)
	return matches, args.Error(1)
}

type PrescriptionRepository struct {
	mock.Mock
}

func (m *PrescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	return m.Called(ctx, prescription).Error(0)
}

func (m *PrescriptionRepository) Get(ctx context.Context, id int64) (*model.Prescription, error) {
	args := m.Called(ctx, id)
	prescription, _ := args.Get(0).(*model.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Prescription, error) {
	args := m.Called(ctx, patientID)
	prescriptions, _ := args.Get(0).([]*model.Prescription)
	return prescriptions, args.Error(1)
}

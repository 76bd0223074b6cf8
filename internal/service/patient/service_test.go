package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository/mocks"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
)

func newTestService() (*Service, *mocks.PatientRepository, *mocks.AppointmentRepository, *mocks.PrescriptionRepository) {
	patients := &mocks.PatientRepository{}
	appointments := &mocks.AppointmentRepository{}
	prescriptions := &mocks.PrescriptionRepository{}
	return NewService(patients, appointments, prescriptions), patients, appointments, prescriptions
}

func TestRegisterPatient(t *testing.T) {
	svc, patients, _, _ := newTestService()
	ctx := context.Background()

	patients.On("Create", ctx, mock.MatchedBy(func(p *model.Patient) bool {
		return p.Name == "John Smith" && p.Phone == "555-0101" && p.DOB == "1980-04-12" &&
			p.Gender == "male" && p.Address == "12 Harbour Road"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Patient).ID = 7
	}).Return(nil)

	got, err := svc.RegisterPatient(ctx, &model.PatientForm{
		Name: "John Smith", Phone: "555-0101", DOB: "1980-04-12", Gender: "male", Address: "12 Harbour Road",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	patients.AssertExpectations(t)
}

func TestUpdatePatientCarriesID(t *testing.T) {
	svc, patients, _, _ := newTestService()
	ctx := context.Background()

	patients.On("Update", ctx, mock.MatchedBy(func(p *model.Patient) bool {
		return p.ID == 3 && p.Gender == "female"
	})).Return(nil)

	_, err := svc.UpdatePatient(ctx, 3, &model.PatientForm{Name: "Jane Doe", DOB: "1990-01-01", Gender: "female", Phone: "555-0202"})

	require.NoError(t, err)
	patients.AssertExpectations(t)
}

func TestGetChart(t *testing.T) {
	svc, patients, appointments, prescriptions := newTestService()
	ctx := context.Background()

	patient := &model.Patient{ID: 1, Name: "John Smith"}
	visits := []*model.Appointment{{ID: 1, PatientID: 1}, {ID: 3, PatientID: 1}}
	rx := []*model.Prescription{{ID: 2, PatientID: 1}}

	patients.On("Get", ctx, int64(1)).Return(patient, nil)
	appointments.On("ListByPatient", ctx, int64(1)).Return(visits, nil)
	prescriptions.On("ListByPatient", ctx, int64(1)).Return(rx, nil)

	chart, err := svc.GetChart(ctx, 1)

	require.NoError(t, err)
	assert.Same(t, patient, chart.Patient)
	assert.Equal(t, visits, chart.Appointments)
	assert.Equal(t, rx, chart.Prescriptions)
}

func TestGetChartMissingPatient(t *testing.T) {
	svc, patients, appointments, _ := newTestService()
	ctx := context.Background()

	patients.On("Get", ctx, int64(9)).Return(nil, apperrors.NotFound("patient", nil))

	_, err := svc.GetChart(ctx, 9)

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	appointments.AssertNotCalled(t, "ListByPatient", mock.Anything, mock.Anything)
}

func TestGetChartStorageFailure(t *testing.T) {
	svc, patients, appointments, _ := newTestService()
	ctx := context.Background()

	patients.On("Get", ctx, int64(1)).Return(&model.Patient{ID: 1}, nil)
	appointments.On("ListByPatient", ctx, int64(1)).Return(nil, apperrors.Storage("list appointments", errors.New("disk full")))

	_, err := svc.GetChart(ctx, 1)

	assert.True(t, apperrors.Is(err, apperrors.ErrStorage))
}

package booking_flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/internal/infra/session"
	storageProfessional "github.com/geekpf/agenda2/internal/infra/storage/professional"
	storageService "github.com/geekpf/agenda2/internal/infra/storage/service"
	"github.com/geekpf/agenda2/pkg/types"
)

// 2026-03-09 — понедельник
var testNow = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

const (
	haircutID  = "svc-haircut"
	manicureID = "svc-manicure"
	anaID      = "prof-ana"
	brunoID    = "prof-bruno"
)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeServiceRepo struct {
	services map[string]*domain.Service
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, storageService.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

type fakeProfessionalRepo struct {
	professionals map[string]*domain.Professional
}

func (r *fakeProfessionalRepo) GetByID(_ context.Context, id string) (*domain.Professional, error) {
	prof, ok := r.professionals[id]
	if !ok {
		return nil, storageProfessional.ErrProfessionalNotFound
	}
	return prof, nil
}

func (r *fakeProfessionalRepo) List(_ context.Context) ([]*domain.Professional, error) {
	out := make([]*domain.Professional, 0, len(r.professionals))
	for _, prof := range r.professionals {
		out = append(out, prof)
	}
	return out, nil
}

type fakeAvailabilityRepo struct {
	week []domain.DayAvailability
}

func (r *fakeAvailabilityRepo) GetAll(_ context.Context) ([]domain.DayAvailability, error) {
	return r.week, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	copied := *appt
	copied.CreatedAt = testNow
	copied.UpdatedAt = testNow
	r.appointments = append(r.appointments, &copied)
	return &copied, nil
}

func (r *fakeAppointmentRepo) ListByProfessionalAndDate(
	_ context.Context, professionalID string, date time.Time, onlySlotHolding bool,
) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, appt := range r.appointments {
		if appt.ProfessionalID != professionalID {
			continue
		}
		if !appt.Date.Equal(date) {
			continue
		}
		if onlySlotHolding && !appt.HoldsSlot() {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointmentRepo
	services     *fakeServiceRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureIn(t, time.UTC)
}

func newFixtureIn(t *testing.T, loc *time.Location) *fixture {
	t.Helper()

	week := make([]domain.DayAvailability, 0, domain.DaysPerWeek)
	for d := 0; d < domain.DaysPerWeek; d++ {
		day := domain.DayAvailability{DayOfWeek: d}
		if d == 1 {
			day.Enabled = true
			day.Slots = []types.TimeString{"09:00", "09:30", "10:00"}
		}
		week = append(week, day)
	}

	services := &fakeServiceRepo{services: map[string]*domain.Service{
		haircutID:  {ID: haircutID, Name: "Corte de cabelo", Price: 50, DurationMinutes: 30},
		manicureID: {ID: manicureID, Name: "Manicure", Price: 35, DurationMinutes: 45},
	}}
	professionals := &fakeProfessionalRepo{professionals: map[string]*domain.Professional{
		anaID:   {ID: anaID, Name: "Ana", ServiceIDs: []string{haircutID, manicureID}},
		brunoID: {ID: brunoID, Name: "Bruno", ServiceIDs: []string{manicureID}},
	}}
	appointments := &fakeAppointmentRepo{}

	uc := New(
		session.NewMemoryStore(30*time.Minute),
		services,
		professionals,
		&fakeAvailabilityRepo{week: week},
		appointments,
		fakeTxManager{},
		30,
		loc,
		&fixedTimeProvider{now: testNow},
		nopLogger{},
	)

	return &fixture{uc: uc, appointments: appointments, services: services}
}

// Понедельник в пределах окна бронирования
func nextMonday() time.Time {
	return time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) startSession(t *testing.T) string {
	t.Helper()
	view, err := f.uc.Start(context.Background())
	require.NoError(t, err)
	return view.Session.ID
}

func (f *fixture) advanceToDateTime(t *testing.T, sessionID string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.uc.SelectService(ctx, &SelectServiceRequest{SessionID: sessionID, ServiceID: haircutID})
	require.NoError(t, err)
	_, err = f.uc.SelectProfessional(ctx, &SelectProfessionalRequest{SessionID: sessionID, ProfessionalID: anaID})
	require.NoError(t, err)
}

func (f *fixture) advanceToPayment(t *testing.T, sessionID string, slot types.TimeString) {
	t.Helper()
	f.advanceToDateTime(t, sessionID)
	_, err := f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      nextMonday(),
		Slot:      &slot,
	})
	require.NoError(t, err)
}

func TestStart(t *testing.T) {
	f := newFixture(t)

	view, err := f.uc.Start(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, view.Session.ID)
	assert.Equal(t, domain.StateSelectService, view.Session.State)
	assert.Nil(t, view.Session.ServiceID)
}

func TestGet_UnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSelectService(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	view, err := f.uc.SelectService(context.Background(), &SelectServiceRequest{
		SessionID: sessionID,
		ServiceID: haircutID,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StateSelectProfessional, view.Session.State)
	require.NotNil(t, view.Session.ServiceID)
	assert.Equal(t, haircutID, *view.Session.ServiceID)

	// На шаге выбора мастера отдаются только мастера, оказывающие услугу
	require.Len(t, view.Professionals, 1)
	assert.Equal(t, anaID, view.Professionals[0].ID)
}

func TestSelectService_UnknownService(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	_, err := f.uc.SelectService(context.Background(), &SelectServiceRequest{
		SessionID: sessionID,
		ServiceID: "missing",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestSelectService_WrongState(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToDateTime(t, sessionID)

	_, err := f.uc.SelectService(context.Background(), &SelectServiceRequest{
		SessionID: sessionID,
		ServiceID: haircutID,
	})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSelectProfessional_NotEligible(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	_, err := f.uc.SelectService(context.Background(), &SelectServiceRequest{
		SessionID: sessionID,
		ServiceID: haircutID,
	})
	require.NoError(t, err)

	// Bruno не оказывает corte de cabelo
	_, err = f.uc.SelectProfessional(context.Background(), &SelectProfessionalRequest{
		SessionID:      sessionID,
		ProfessionalID: brunoID,
	})
	assert.ErrorIs(t, err, ErrProfessionalNotEligible)
}

func TestSelectDateTime_DateOnlyStaysOnStep(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToDateTime(t, sessionID)

	view, err := f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      nextMonday(),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StateSelectDateTime, view.Session.State)
	require.NotNil(t, view.Session.Date)
	assert.Nil(t, view.Session.Slot)
}

func TestSelectDateTime_DateChangeClearsSlot(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToPayment(t, sessionID, "09:30")

	// Шаг назад возвращает на выбор даты, слот остается
	view, err := f.uc.Back(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSelectDateTime, view.Session.State)
	require.NotNil(t, view.Session.Slot)

	// Выбор новой даты без слота сбрасывает прежний слот
	otherMonday := nextMonday().AddDate(0, 0, 7)
	view, err = f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      otherMonday,
	})
	require.NoError(t, err)
	assert.Nil(t, view.Session.Slot)
	assert.Equal(t, domain.StateSelectDateTime, view.Session.State)
}

func TestSelectDateTime_ClosedDayRejected(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToDateTime(t, sessionID)

	// 2026-03-10 — вторник, закрыт
	tuesday := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      tuesday,
	})
	assert.ErrorIs(t, err, ErrDateNotAvailable)
}

func TestSelectDateTime_DateOutsideHorizonRejected(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToDateTime(t, sessionID)

	farMonday := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      farMonday,
	})
	assert.ErrorIs(t, err, ErrDateNotAvailable)

	pastMonday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err = f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      pastMonday,
	})
	assert.ErrorIs(t, err, ErrDateNotAvailable)
}

func TestSelectDateTime_TodayInNegativeOffsetZone(t *testing.T) {
	f := newFixtureIn(t, time.FixedZone("-03:00", -3*60*60))
	sessionID := f.startSession(t)
	f.advanceToDateTime(t, sessionID)

	// Дата из HTTP-запроса парсится в UTC, салон живёт в зоне -03:00.
	// Сегодняшний понедельник обязан приниматься несмотря на разницу зон.
	today, err := time.Parse(domain.DateFormat, testNow.Format(domain.DateFormat))
	require.NoError(t, err)

	view, err := f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      today,
	})
	require.NoError(t, err)
	require.NotNil(t, view.Session.Date)
	assert.Equal(t, domain.StateSelectDateTime, view.Session.State)

	slot := types.TimeString("09:00")
	view, err = f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      today,
		Slot:      &slot,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateAcknowledgePayment, view.Session.State)
}

func TestSelectDateTime_SlotOutsideTemplateRejected(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToDateTime(t, sessionID)

	slot := types.TimeString("13:00")
	_, err := f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      nextMonday(),
		Slot:      &slot,
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestSelectDateTime_WithSlotAdvances(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToDateTime(t, sessionID)

	slot := types.TimeString("09:30")
	view, err := f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      nextMonday(),
		Slot:      &slot,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StateAcknowledgePayment, view.Session.State)
	require.NotNil(t, view.Session.Slot)
	assert.Equal(t, slot, *view.Session.Slot)
}

func TestConfirm(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToPayment(t, sessionID, "09:30")

	view, err := f.uc.Confirm(context.Background(), &ConfirmRequest{
		SessionID:     sessionID,
		ClientName:    "  Maria Silva  ",
		ClientContact: "maria@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StateConfirmed, view.Session.State)
	require.NotNil(t, view.Session.AppointmentID)
	require.NotNil(t, view.Appointment)

	appt := view.Appointment
	assert.Equal(t, *view.Session.AppointmentID, appt.ID)
	assert.Equal(t, domain.StatusPending, appt.Status, "new appointments always await moderation")
	assert.Equal(t, "Maria Silva", appt.ClientName)
	assert.Equal(t, types.TimeString("09:30"), appt.StartTime)
	assert.Equal(t, 50.0, appt.Price)
}

func TestConfirm_PriceSnapshotSurvivesPriceEdit(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToPayment(t, sessionID, "09:30")

	view, err := f.uc.Confirm(context.Background(), &ConfirmRequest{
		SessionID:     sessionID,
		ClientName:    "Maria",
		ClientContact: "maria@example.com",
	})
	require.NoError(t, err)

	// Повышение цены услуги не трогает уже созданную запись
	f.services.services[haircutID].Price = 80

	require.Len(t, f.appointments.appointments, 1)
	assert.Equal(t, 50.0, f.appointments.appointments[0].Price)
	assert.Equal(t, 50.0, view.Appointment.Price)
}

func TestConfirm_MissingClientInfo(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToPayment(t, sessionID, "09:30")

	_, err := f.uc.Confirm(context.Background(), &ConfirmRequest{
		SessionID:     sessionID,
		ClientName:    "   ",
		ClientContact: "maria@example.com",
	})
	assert.ErrorIs(t, err, ErrMissingClientInfo)
}

func TestConfirm_SlotTakenMeanwhile(t *testing.T) {
	f := newFixture(t)

	first := f.startSession(t)
	f.advanceToPayment(t, first, "09:30")

	second := f.startSession(t)
	f.advanceToPayment(t, second, "09:30")

	_, err := f.uc.Confirm(context.Background(), &ConfirmRequest{
		SessionID:     first,
		ClientName:    "Maria",
		ClientContact: "maria@example.com",
	})
	require.NoError(t, err)

	// Вторая сессия проиграла гонку за слот
	_, err = f.uc.Confirm(context.Background(), &ConfirmRequest{
		SessionID:     second,
		ClientName:    "João",
		ClientContact: "joao@example.com",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestConfirm_BookedSlotExcludedFromLaterSelection(t *testing.T) {
	f := newFixture(t)

	first := f.startSession(t)
	f.advanceToPayment(t, first, "09:30")
	_, err := f.uc.Confirm(context.Background(), &ConfirmRequest{
		SessionID:     first,
		ClientName:    "Maria",
		ClientContact: "maria@example.com",
	})
	require.NoError(t, err)

	second := f.startSession(t)
	f.advanceToDateTime(t, second)

	slot := types.TimeString("09:30")
	_, err = f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: second,
		Date:      nextMonday(),
		Slot:      &slot,
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Соседний слот остается доступным
	other := types.TimeString("10:00")
	view, err := f.uc.SelectDateTime(context.Background(), &SelectDateTimeRequest{
		SessionID: second,
		Date:      nextMonday(),
		Slot:      &other,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateAcknowledgePayment, view.Session.State)
}

func TestBack(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToDateTime(t, sessionID)

	view, err := f.uc.Back(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSelectProfessional, view.Session.State)

	// Ранее выбранная услуга сохраняется
	require.NotNil(t, view.Session.ServiceID)
	assert.Equal(t, haircutID, *view.Session.ServiceID)
}

func TestBack_FromFirstStepRejected(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	_, err := f.uc.Back(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestBack_FromConfirmedRejected(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToPayment(t, sessionID, "09:30")

	_, err := f.uc.Confirm(context.Background(), &ConfirmRequest{
		SessionID:     sessionID,
		ClientName:    "Maria",
		ClientContact: "maria@example.com",
	})
	require.NoError(t, err)

	_, err = f.uc.Back(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRestart(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)
	f.advanceToPayment(t, sessionID, "09:30")

	view, err := f.uc.Restart(context.Background(), sessionID)
	require.NoError(t, err)

	assert.Equal(t, sessionID, view.Session.ID)
	assert.Equal(t, domain.StateSelectService, view.Session.State)
	assert.Nil(t, view.Session.ServiceID)
	assert.Nil(t, view.Session.ProfessionalID)
	assert.Nil(t, view.Session.Date)
	assert.Nil(t, view.Session.Slot)
}

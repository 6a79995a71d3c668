package booking_flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/internal/infra/session"
	"github.com/geekpf/agenda2/internal/infra/storage/appointment"
	storageProfessional "github.com/geekpf/agenda2/internal/infra/storage/professional"
	storageService "github.com/geekpf/agenda2/internal/infra/storage/service"
)

// UseCase управляет пошаговым процессом бронирования
type UseCase struct {
	sessions         SessionStore
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	txManager        TransactionManager
	horizonDays      int
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// New создает новый UseCase для процесса бронирования
func New(
	sessions SessionStore,
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	horizonDays int,
	location *time.Location,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		sessions:         sessions,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		txManager:        txManager,
		horizonDays:      horizonDays,
		location:         location,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Start создает новую сессию бронирования
func (uc *UseCase) Start(ctx context.Context) (*SessionView, error) {
	now := uc.timeProvider.Now().In(uc.location)
	sess := &domain.BookingSession{
		ID:        uuid.NewString(),
		State:     domain.StateSelectService,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.sessions.Save(ctx, sess); err != nil {
		uc.logger.Error("booking_flow.Start: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: Start - save session: %v", ErrInternal, err)
	}

	uc.logger.Info("booking_flow.Start: session %s created", sess.ID)
	return uc.buildView(ctx, sess)
}

// Get возвращает текущее состояние сессии с контекстом шага
func (uc *UseCase) Get(ctx context.Context, sessionID string) (*SessionView, error) {
	sess, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.buildView(ctx, sess)
}

// SelectService выбирает услугу и переводит сессию к выбору мастера
func (uc *UseCase) SelectService(ctx context.Context, req *SelectServiceRequest) (*SessionView, error) {
	// 1. Валидация входных данных
	if err := validateSelectService(req); err != nil {
		return nil, err
	}

	// 2. Загрузка сессии и проверка состояния
	sess, err := uc.loadSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != domain.StateSelectService {
		return nil, fmt.Errorf("%w: SelectService in state %s", ErrInvalidState, sess.State)
	}

	// 3. Проверка существования услуги
	if _, err := uc.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, storageService.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("booking_flow.SelectService: failed to get service %s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: SelectService - get service: %v", ErrInternal, err)
	}

	// 4. Обновление сессии: смена услуги сбрасывает последующие шаги
	sess.ServiceID = &req.ServiceID
	sess.ProfessionalID = nil
	sess.Date = nil
	sess.Slot = nil
	sess.State = domain.StateSelectProfessional

	if err := uc.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return uc.buildView(ctx, sess)
}

// SelectProfessional выбирает мастера и переводит сессию к выбору даты и времени
func (uc *UseCase) SelectProfessional(ctx context.Context, req *SelectProfessionalRequest) (*SessionView, error) {
	// 1. Валидация входных данных
	if err := validateSelectProfessional(req); err != nil {
		return nil, err
	}

	// 2. Загрузка сессии и проверка состояния
	sess, err := uc.loadSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != domain.StateSelectProfessional {
		return nil, fmt.Errorf("%w: SelectProfessional in state %s", ErrInvalidState, sess.State)
	}
	if sess.ServiceID == nil {
		return nil, fmt.Errorf("%w: SelectProfessional without service", ErrInvalidState)
	}

	// 3. Проверка мастера: существует и оказывает выбранную услугу
	prof, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, storageProfessional.ErrProfessionalNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProfessionalNotFound, req.ProfessionalID)
		}
		uc.logger.Error("booking_flow.SelectProfessional: failed to get professional %s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: SelectProfessional - get professional: %v", ErrInternal, err)
	}
	if !prof.Offers(*sess.ServiceID) {
		return nil, fmt.Errorf("%w: professional %s, service %s", ErrProfessionalNotEligible, req.ProfessionalID, *sess.ServiceID)
	}

	// 4. Обновление сессии: смена мастера сбрасывает дату и слот
	sess.ProfessionalID = &req.ProfessionalID
	sess.Date = nil
	sess.Slot = nil
	sess.State = domain.StateSelectDateTime

	if err := uc.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return uc.buildView(ctx, sess)
}

// SelectDateTime выбирает дату и, опционально, слот времени.
// Выбор только даты сбрасывает ранее выбранный слот и оставляет сессию на том же шаге.
func (uc *UseCase) SelectDateTime(ctx context.Context, req *SelectDateTimeRequest) (*SessionView, error) {
	// 1. Валидация входных данных
	if err := validateSelectDateTime(req); err != nil {
		return nil, err
	}

	// 2. Загрузка сессии и проверка состояния
	sess, err := uc.loadSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != domain.StateSelectDateTime {
		return nil, fmt.Errorf("%w: SelectDateTime in state %s", ErrInvalidState, sess.State)
	}
	if sess.ProfessionalID == nil {
		return nil, fmt.Errorf("%w: SelectDateTime without professional", ErrInvalidState)
	}

	// 3. Проверка, что дата открыта для записи в пределах горизонта
	availability, err := uc.availabilityRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("booking_flow.SelectDateTime: failed to load availability: %v", err)
		return nil, fmt.Errorf("%w: SelectDateTime - load availability: %v", ErrInternal, err)
	}
	today := uc.timeProvider.Now().In(uc.location)
	if !isDateBookable(availability, uc.horizonDays, today, req.Date) {
		return nil, fmt.Errorf("%w: %s", ErrDateNotAvailable, req.Date.Format(domain.DateFormat))
	}

	// 4. Без слота: фиксируем дату и остаемся на шаге выбора времени
	if req.Slot == nil {
		date := req.Date
		sess.Date = &date
		sess.Slot = nil
		if err := uc.saveSession(ctx, sess); err != nil {
			return nil, err
		}
		return uc.buildView(ctx, sess)
	}

	// 5. Проверка, что слот свободен на выбранную дату
	appointments, err := uc.appointmentRepo.ListByProfessionalAndDate(ctx, *sess.ProfessionalID, req.Date, true)
	if err != nil {
		uc.logger.Error("booking_flow.SelectDateTime: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: SelectDateTime - list appointments: %v", ErrInternal, err)
	}
	if !isSlotFree(availability, appointments, *sess.ProfessionalID, req.Date, *req.Slot) {
		return nil, fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, req.Date.Format(domain.DateFormat), *req.Slot)
	}

	// 6. Обновление сессии и переход к подтверждению
	date := req.Date
	slot := *req.Slot
	sess.Date = &date
	sess.Slot = &slot
	sess.State = domain.StateAcknowledgePayment

	if err := uc.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return uc.buildView(ctx, sess)
}

// Confirm завершает бронирование: создает запись со статусом pending
func (uc *UseCase) Confirm(ctx context.Context, req *ConfirmRequest) (*SessionView, error) {
	// 1. Валидация входных данных
	if err := validateConfirm(req); err != nil {
		return nil, err
	}
	clientName, clientContact := normalizeClientInfo(req.ClientName, req.ClientContact)

	// 2. Загрузка сессии и проверка состояния
	sess, err := uc.loadSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != domain.StateAcknowledgePayment {
		return nil, fmt.Errorf("%w: Confirm in state %s", ErrInvalidState, sess.State)
	}
	if sess.ServiceID == nil || sess.ProfessionalID == nil || sess.Date == nil || sess.Slot == nil {
		return nil, fmt.Errorf("%w: Confirm with incomplete selection", ErrInvalidState)
	}

	// 3. Снимок цены услуги на момент бронирования
	svc, err := uc.serviceRepo.GetByID(ctx, *sess.ServiceID)
	if err != nil {
		if errors.Is(err, storageService.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, *sess.ServiceID)
		}
		uc.logger.Error("booking_flow.Confirm: failed to get service %s: %v", *sess.ServiceID, err)
		return nil, fmt.Errorf("%w: Confirm - get service: %v", ErrInternal, err)
	}

	availability, err := uc.availabilityRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("booking_flow.Confirm: failed to load availability: %v", err)
		return nil, fmt.Errorf("%w: Confirm - load availability: %v", ErrInternal, err)
	}

	// 4. Создание записи: повторная проверка слота и вставка в одной транзакции
	var created *domain.Appointment
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointments, err := uc.appointmentRepo.ListByProfessionalAndDate(txCtx, *sess.ProfessionalID, *sess.Date, true)
		if err != nil {
			return fmt.Errorf("%w: Confirm - list appointments: %v", ErrInternal, err)
		}
		if !isSlotFree(availability, appointments, *sess.ProfessionalID, *sess.Date, *sess.Slot) {
			return fmt.Errorf("%w: %s %s", ErrSlotTaken, sess.Date.Format(domain.DateFormat), *sess.Slot)
		}

		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ID:             uuid.NewString(),
			ClientName:     clientName,
			ClientContact:  clientContact,
			ServiceID:      *sess.ServiceID,
			ProfessionalID: *sess.ProfessionalID,
			Date:           *sess.Date,
			StartTime:      *sess.Slot,
			Status:         domain.StatusPending,
			Price:          svc.Price,
		})
		if err != nil {
			if errors.Is(err, appointment.ErrSlotTaken) {
				return fmt.Errorf("%w: %s %s", ErrSlotTaken, sess.Date.Format(domain.DateFormat), *sess.Slot)
			}
			return fmt.Errorf("%w: Confirm - create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrSlotTaken) {
			uc.logger.Warn("booking_flow.Confirm: slot taken for session %s", sess.ID)
			return nil, txErr
		}
		uc.logger.Error("booking_flow.Confirm: transaction failed for session %s: %v", sess.ID, txErr)
		if errors.Is(txErr, ErrInternal) {
			return nil, txErr
		}
		return nil, fmt.Errorf("%w: Confirm - transaction: %v", ErrInternal, txErr)
	}

	// 5. Фиксация результата в сессии
	sess.AppointmentID = &created.ID
	sess.State = domain.StateConfirmed

	if err := uc.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	uc.logger.Info("booking_flow.Confirm: appointment %s created for session %s", created.ID, sess.ID)

	view, err := uc.buildView(ctx, sess)
	if err != nil {
		return nil, err
	}
	view.Appointment = created
	return view, nil
}

// Back возвращает сессию на предыдущий шаг. Выбранные данные сохраняются
// до тех пор, пока соответствующий шаг не будет пройден заново.
func (uc *UseCase) Back(ctx context.Context, sessionID string) (*SessionView, error) {
	sess, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	prev := sess.State.Prev()
	if prev == sess.State {
		return nil, fmt.Errorf("%w: Back from state %s", ErrInvalidState, sess.State)
	}
	sess.State = prev

	if err := uc.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return uc.buildView(ctx, sess)
}

// Restart сбрасывает сессию к начальному шагу выбора услуги
func (uc *UseCase) Restart(ctx context.Context, sessionID string) (*SessionView, error) {
	sess, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Reset()

	if err := uc.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	uc.logger.Info("booking_flow.Restart: session %s reset", sess.ID)
	return uc.buildView(ctx, sess)
}

func (uc *UseCase) loadSession(ctx context.Context, sessionID string) (*domain.BookingSession, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is empty", ErrInvalidInput)
	}
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		uc.logger.Error("booking_flow: failed to load session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: load session: %v", ErrInternal, err)
	}
	return sess, nil
}

func (uc *UseCase) saveSession(ctx context.Context, sess *domain.BookingSession) error {
	sess.UpdatedAt = uc.timeProvider.Now().In(uc.location)
	if err := uc.sessions.Save(ctx, sess); err != nil {
		uc.logger.Error("booking_flow: failed to save session %s: %v", sess.ID, err)
		return fmt.Errorf("%w: save session: %v", ErrInternal, err)
	}
	return nil
}

// buildView собирает контекст текущего шага: услугу, мастеров, платёжные реквизиты
func (uc *UseCase) buildView(ctx context.Context, sess *domain.BookingSession) (*SessionView, error) {
	view := &SessionView{Session: sess}

	if sess.ServiceID != nil {
		svc, err := uc.serviceRepo.GetByID(ctx, *sess.ServiceID)
		if err != nil && !errors.Is(err, storageService.ErrServiceNotFound) {
			uc.logger.Error("booking_flow: failed to load service %s for view: %v", *sess.ServiceID, err)
			return nil, fmt.Errorf("%w: build view - get service: %v", ErrInternal, err)
		}
		view.Service = svc

		if svc != nil && sess.State == domain.StateSelectProfessional {
			professionals, err := uc.professionalRepo.List(ctx)
			if err != nil {
				uc.logger.Error("booking_flow: failed to list professionals for view: %v", err)
				return nil, fmt.Errorf("%w: build view - list professionals: %v", ErrInternal, err)
			}
			eligible := make([]*domain.Professional, 0, len(professionals))
			for _, p := range professionals {
				if p.Offers(svc.ID) {
					eligible = append(eligible, p)
				}
			}
			view.Professionals = eligible
		}

		if svc != nil && (sess.State == domain.StateAcknowledgePayment || sess.State == domain.StateConfirmed) {
			view.Payment = &PaymentInfo{PixKey: svc.PixKey, PixQRCode: svc.PixQRCode}
		}
	}

	if sess.ProfessionalID != nil {
		prof, err := uc.professionalRepo.GetByID(ctx, *sess.ProfessionalID)
		if err != nil && !errors.Is(err, storageProfessional.ErrProfessionalNotFound) {
			uc.logger.Error("booking_flow: failed to load professional %s for view: %v", *sess.ProfessionalID, err)
			return nil, fmt.Errorf("%w: build view - get professional: %v", ErrInternal, err)
		}
		view.Professional = prof
	}

	return view, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/MikeRez0/lunchorder/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultTickInterval = time.Minute
const DefaultMessagingBaseURL = "https://wa.me"

const (
	alertStartup      = "Error al cargar el sistema. Por favor recarga la página."
	noticeEmptyOrder  = "Por favor selecciona tu pedido."
	alertMessage      = "Error al generar el mensaje."
	alertPhone        = "Número de WhatsApp inválido. Verifica la configuración."
	alertPhonePattern = "Número inválido detectado: %s"
	alertLink         = "No se pudo abrir el enlace de WhatsApp."
	confirmAdvisory   = "⚠️ %s\n\n¿Deseas enviar el pedido de todas formas?"
)

type Options struct {
	TickInterval     time.Duration
	MessagingBaseURL string
	DefaultPhone     string
}

// Service is the orchestrator. It owns the in-progress order and the last
// evaluation; every action and tick runs to completion under mu.
type Service struct {
	settings  port.SettingsRepository
	source    port.CatalogSource
	clock     port.Clock
	presenter port.Presenter
	logger    *zap.Logger
	opts      Options

	mu      sync.Mutex
	status  domain.SystemStatus
	catalog *domain.Catalog
	order   domain.Order
	state   domain.ClockState
	rules   domain.RulesResult
	phone   string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ port.Service = (*Service)(nil)

func NewService(settings port.SettingsRepository, source port.CatalogSource, clock port.Clock,
	presenter port.Presenter, opts Options, logger *zap.Logger) (*Service, error) {
	if presenter == nil {
		presenter = port.NopPresenter{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.MessagingBaseURL == "" {
		opts.MessagingBaseURL = DefaultMessagingBaseURL
	}
	if opts.DefaultPhone == "" {
		opts.DefaultPhone = domain.PhonePlaceholder
	}

	return &Service{
		settings:  settings,
		source:    source,
		clock:     clock,
		presenter: presenter,
		logger:    logger,
		opts:      opts,
		status:    domain.StatusInit,
		order:     domain.NewOrder(),
	}, nil
}

func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.StatusInit {
		return domain.ErrSystemStarted
	}
	s.logger.Info("system starting")

	catalog, err := s.source.Load()
	if err != nil || catalog == nil {
		s.status = domain.StatusError
		s.logger.Error("load catalog", zap.Error(err))
		s.presenter.Alert(alertStartup)
		if err == nil {
			err = domain.ErrCatalogMissing
		}
		return fmt.Errorf("start: %w", err)
	}
	s.catalog = catalog

	s.phone = s.loadPhone(ctx)
	s.order = domain.NewOrder()

	s.presenter.Init(s.actions(), s.catalog)
	s.evaluateAndPublish()

	tickCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go s.runTicker(tickCtx)

	s.status = domain.StatusReady
	s.logger.Info("system ready", zap.Duration("tick", s.opts.TickInterval))

	return nil
}

func (s *Service) loadPhone(ctx context.Context) string {
	phone, err := s.settings.Get(ctx, port.SettingsKeyPhone)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("load phone setting", zap.Error(err))
		}
		return s.opts.DefaultPhone
	}
	if phone == "" {
		return s.opts.DefaultPhone
	}
	return phone
}

func (s *Service) actions() port.Actions {
	return port.Actions{
		AdjustBase:  s.AdjustBase,
		ToggleExtra: s.ToggleExtra,
		Reset:       s.ResetOrder,
		Submit:      s.Submit,
	}
}

// Stop cancels the periodic re-evaluation and waits for it to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *Service) runTicker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.evaluateAndPublish()
			s.logger.Debug("tick",
				zap.String("market", s.rules.MarketState),
				zap.Int("minutes", s.state.MinutesSinceMidnight))
			s.mu.Unlock()
		}
	}
}

func (s *Service) AdjustBase(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog == nil {
		return domain.ErrSystemNotReady
	}
	if !s.catalog.HasOption(id) {
		return domain.ErrUnknownOption
	}

	s.order = s.order.AdjustBase(id, delta)
	s.evaluateAndPublish()
	return nil
}

func (s *Service) ToggleExtra(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog == nil {
		return domain.ErrSystemNotReady
	}
	if !s.catalog.HasExtra(id) {
		return domain.ErrUnknownOption
	}

	s.order = s.order.ToggleExtra(id)
	s.evaluateAndPublish()
	return nil
}

func (s *Service) ResetOrder() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog == nil {
		return domain.ErrSystemNotReady
	}

	s.order = domain.NewOrder()
	s.evaluateAndPublish()
	return nil
}

// evaluateAndPublish must be called with mu held.
func (s *Service) evaluateAndPublish() {
	s.evaluate()
	s.presenter.Update(s.snapshot())
}

func (s *Service) evaluate() {
	s.state = domain.NewClockState(s.clock.Now())
	s.rules = domain.Evaluate(s.order, s.state)
}

func (s *Service) snapshot() domain.Snapshot {
	return domain.Snapshot{
		Order:   s.order.Clone(),
		Rules:   s.rules,
		Clock:   s.state,
		Catalog: s.catalog,
		Status:  s.status,
	}
}

// Submit composes the order message and opens the messaging link through ui.
// SENT only means the link was opened, not that the order was received.
func (s *Service) Submit(ctx context.Context, ui port.Interaction) (*domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog == nil {
		return nil, domain.ErrSystemNotReady
	}

	s.evaluate()

	if s.order.IsEmpty() {
		ui.Notice(noticeEmptyOrder)
		return nil, domain.ErrEmptyOrder
	}

	if !s.rules.IsExecutable() {
		advisory := domain.ReasonOutsideHours.Advisory()
		if s.rules.Reason != nil {
			advisory = s.rules.Reason.Advisory()
		}
		if !ui.Confirm(fmt.Sprintf(confirmAdvisory, advisory)) {
			s.logger.Debug("submission cancelled", zap.Stringp("reason", (*string)(s.rules.Reason)))
			return nil, domain.ErrConfirmationRequired
		}
	}

	id := uuid.NewString()
	log := s.logger.With(zap.String("submission", id))
	s.status = domain.StatusSending

	message, ok := domain.ComposeMessage(s.order, s.rules, s.state, s.catalog)
	if !ok {
		return nil, s.fail(ui, log, alertMessage, domain.ErrMessageComposition)
	}

	phone, err := domain.NormalizePhone(s.phone)
	if err != nil {
		return nil, s.fail(ui, log, alertPhone, err)
	}
	log.Debug("phone normalized",
		zap.String("raw", s.phone),
		zap.String("normalized", phone),
		zap.Int("length", len(phone)))

	if err := domain.ValidatePhone(phone); err != nil {
		return nil, s.fail(ui, log, fmt.Sprintf(alertPhonePattern, phone), err)
	}

	link := domain.MessageLink(s.opts.MessagingBaseURL, phone, message)
	if err := ui.OpenLink(ctx, link); err != nil {
		return nil, s.fail(ui, log, alertLink, fmt.Errorf("%w: %w", domain.ErrLinkOpen, err))
	}

	s.status = domain.StatusSent
	receipt := domain.Receipt{
		ID:           id,
		Link:         link,
		Message:      message,
		DispatchTime: s.rules.AssignedDispatchTime,
		SentAt:       s.state.Timestamp,
	}
	s.presenter.Confirmed(receipt)
	s.presenter.Update(s.snapshot())

	log.Info("order sent",
		zap.String("market", s.rules.MarketState),
		zap.Int("bases", len(s.order.Bases)),
		zap.Int("extras", len(s.order.Extras)))

	return &receipt, nil
}

func (s *Service) fail(ui port.Interaction, log *zap.Logger, alert string, err error) error {
	s.status = domain.StatusError
	log.Error("submission failed", zap.Error(err))
	ui.Alert(alert)
	s.presenter.Update(s.snapshot())
	return err
}

// SaveConfiguration stores the raw number. It is validated only on submit.
func (s *Service) SaveConfiguration(ctx context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phone = number
	if err := s.settings.Set(ctx, port.SettingsKeyPhone, number); err != nil {
		s.logger.Error("save phone setting", zap.Error(err))
		return domain.ErrInternal
	}
	s.logger.Info("configuration saved")
	return nil
}

func (s *Service) Configuration() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phone
}

func (s *Service) Catalog() *domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

func (s *Service) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Service) Status() domain.SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

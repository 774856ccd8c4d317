package http

import (
	"sync"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/MikeRez0/lunchorder/internal/core/port"
	"go.uber.org/zap"
)

// WebPresenter keeps what the orchestrator publishes so that the JSON API can
// serve it to the page.
type WebPresenter struct {
	mu       sync.RWMutex
	actions  *port.Actions
	catalog  *domain.Catalog
	snapshot *domain.Snapshot
	alert    string
	receipt  *domain.Receipt
	logger   *zap.Logger
}

func NewWebPresenter(logger *zap.Logger) *WebPresenter {
	return &WebPresenter{logger: logger}
}

func (p *WebPresenter) Init(actions port.Actions, catalog *domain.Catalog) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.actions = &actions
	p.catalog = catalog
	p.alert = ""
}

func (p *WebPresenter) Update(snapshot domain.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = &snapshot
}

func (p *WebPresenter) Alert(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alert = message
	p.logger.Warn("alert", zap.String("message", message))
}

func (p *WebPresenter) Confirmed(receipt domain.Receipt) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.receipt = &receipt
}

func (p *WebPresenter) Actions() (port.Actions, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.actions == nil {
		return port.Actions{}, false
	}
	return *p.actions, true
}

func (p *WebPresenter) Catalog() *domain.Catalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.catalog
}

type stateView struct {
	domain.Snapshot
	Alert       string          `json:"alert,omitempty"`
	LastReceipt *domain.Receipt `json:"lastReceipt,omitempty"`
}

func (p *WebPresenter) State() (stateView, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.snapshot == nil {
		return stateView{Alert: p.alert}, false
	}
	return stateView{
		Snapshot:    *p.snapshot,
		Alert:       p.alert,
		LastReceipt: p.receipt,
	}, true
}

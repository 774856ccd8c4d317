package port

import (
	"context"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
)

// Actions are the callbacks the presentation layer triggers on user input.
type Actions struct {
	AdjustBase  func(id string, delta int) error
	ToggleExtra func(id string) error
	Reset       func() error
	Submit      func(ctx context.Context, ui Interaction) (*domain.Receipt, error)
}

//go:generate mockgen -source=presenter.go -destination=mock/presenter.go -package=mock
type Presenter interface {
	Init(actions Actions, catalog *domain.Catalog)
	Update(snapshot domain.Snapshot)
	Alert(message string)
	Confirmed(receipt domain.Receipt)
}

// Interaction is the platform surface of a single submission: dialogs and
// the external link action.
type Interaction interface {
	Notice(message string)
	Alert(message string)
	Confirm(message string) bool
	OpenLink(ctx context.Context, link string) error
}

// NopPresenter ignores every hook.
type NopPresenter struct{}

func (NopPresenter) Init(Actions, *domain.Catalog) {}
func (NopPresenter) Update(domain.Snapshot) {}
func (NopPresenter) Alert(string) {}
func (NopPresenter) Confirmed(domain.Receipt) {}

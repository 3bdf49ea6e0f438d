package maintenance

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mwalimu/gradebook/core"
)

// SettingsKey is the well-known settings row holding the textual flag.
const SettingsKey = "maintenance_on"

var (
	// errors
	ErrToggleFailed = errors.New("maintenance toggle failed, flag unchanged")
)

type (
	Repository interface {
		// GetFlag reports the persisted flag; ok is false when the key was
		// never set.
		GetFlag(ctx context.Context) (on, ok bool, err error)
		// SetFlag persists unconditionally, creating the key if absent.
		SetFlag(ctx context.Context, on bool) error
		// ToggleFlag reads the current value, flips it and persists the new
		// value in one atomic critical section, so two interleaved toggles
		// can never both act on the same stale read. Returns the new value.
		ToggleFlag(ctx context.Context) (bool, error)
	}

	// Service is the process-wide maintenance gate. It doubles as the
	// core.WriteGuard consulted by every mutating service call.
	Service struct {
		repo Repository
		log  core.Logger
	}
)

var _ core.WriteGuard = (*Service)(nil) // interface compliance check

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// IsOn reads the flag, defaulting to false (not under maintenance) when the
// key is unset or unreadable. Unknown state must not block legitimate use.
func (svc *Service) IsOn(ctx context.Context) bool {
	on, ok, err := svc.repo.GetFlag(ctx)
	if err != nil {
		svc.log.Warn("reading maintenance flag, defaulting to off", err)
		return false
	}
	return ok && on
}

func (svc *Service) Set(ctx context.Context, on bool) error {
	return svc.repo.SetFlag(ctx, on)
}

// Toggle flips the flag and returns the new value. On failure the flag is
// left at its last successfully persisted value and the cause travels with
// the returned error.
func (svc *Service) Toggle(ctx context.Context) (bool, error) {
	on, err := svc.repo.ToggleFlag(ctx)
	if err != nil {
		svc.log.Error("toggling maintenance flag", err)
		return false, errors.WithMessage(ErrToggleFailed, err.Error())
	}
	return on, nil
}

func (svc *Service) CheckWritable(ctx context.Context) error {
	if svc.IsOn(ctx) {
		return core.ErrMaintenanceActive
	}
	return nil
}

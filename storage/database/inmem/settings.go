package inmemdb

import (
	"context"
	"strconv"

	"github.com/mwalimu/gradebook/core/maintenance"
)

type settingsRepository struct {
	db *settingsTable

	// FailNext makes the next mutating call fail, for exercising error paths.
	FailNext error
}

var _ maintenance.Repository = (*settingsRepository)(nil) // interface compliance check

func NewSettingsRepository(db *DB) *settingsRepository {
	return &settingsRepository{db: db.settings}
}

func (repo *settingsRepository) failNext() error {
	err := repo.FailNext
	repo.FailNext = nil
	return err
}

func (repo *settingsRepository) GetFlag(context.Context) (bool, bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	val, ok := repo.db.t[maintenance.SettingsKey]
	if !ok {
		return false, false, nil
	}
	on, err := strconv.ParseBool(val)
	if err != nil {
		return false, false, nil
	}
	return on, true, nil
}

func (repo *settingsRepository) SetFlag(_ context.Context, on bool) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if err := repo.failNext(); err != nil {
		return err
	}
	repo.db.t[maintenance.SettingsKey] = strconv.FormatBool(on)
	return nil
}

// ToggleFlag mirrors the SQL contract: the read-flip-write is one critical
// section even when the flag was never set, so concurrent first-use toggles
// serialize instead of both acting on the unset default.
func (repo *settingsRepository) ToggleFlag(context.Context) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if err := repo.failNext(); err != nil {
		return false, err
	}
	current, _ := strconv.ParseBool(repo.db.t[maintenance.SettingsKey])
	newVal := !current
	repo.db.t[maintenance.SettingsKey] = strconv.FormatBool(newVal)
	return newVal, nil
}

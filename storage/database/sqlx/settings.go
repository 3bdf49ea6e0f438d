package sqlxrepos

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mwalimu/gradebook/core"
	"github.com/mwalimu/gradebook/core/maintenance"
)

type settingsRepository struct {
	db *sqlx.DB
}

var _ maintenance.Repository = (*settingsRepository)(nil) // interface compliance check

func NewSettingsRepository(db *sqlx.DB) *settingsRepository {
	return &settingsRepository{db: db}
}

func (repo settingsRepository) GetFlag(ctx context.Context) (bool, bool, error) {
	var val string
	err := repo.db.GetContext(ctx,
		&val, `SELECT value FROM settings WHERE key = $1`, maintenance.SettingsKey)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, errors.Wrap(err, "reading maintenance flag")
	}
	on, err := strconv.ParseBool(val)
	if err != nil {
		// an unparseable value counts as unset, not as an outage
		return false, false, nil
	}
	return on, true, nil
}

func (repo settingsRepository) SetFlag(ctx context.Context, on bool) error {
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		maintenance.SettingsKey, strconv.FormatBool(on),
	)
	return errors.Wrap(err, "persisting maintenance flag")
}

// ToggleFlag locks the settings row for the whole read-flip-write so two
// interleaved toggles serialize instead of both acting on a stale read. The
// row is seeded with the off default first: FOR UPDATE takes no lock on zero
// rows, so an unseeded first use would let two toggles race past each other.
func (repo settingsRepository) ToggleFlag(ctx context.Context) (bool, error) {
	var newVal bool
	err := core.Atomic(ctx, repo.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES ($1, 'false')
			ON CONFLICT (key) DO NOTHING`, maintenance.SettingsKey); err != nil {
			return errors.Wrap(err, "seeding maintenance flag")
		}

		var val string
		if err := tx.GetContext(ctx,
			&val, `SELECT value FROM settings WHERE key = $1 FOR UPDATE`, maintenance.SettingsKey); err != nil {
			return errors.Wrap(err, "reading maintenance flag")
		}
		current, _ := strconv.ParseBool(val)

		newVal = !current
		if _, err := tx.ExecContext(ctx,
			`UPDATE settings SET value = $2 WHERE key = $1`,
			maintenance.SettingsKey, strconv.FormatBool(newVal)); err != nil {
			return errors.Wrap(err, "persisting maintenance flag")
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return newVal, nil
}

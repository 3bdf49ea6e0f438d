package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mwalimu/gradebook/core"
	"github.com/mwalimu/gradebook/core/grading"
)

type gradingRepository struct {
	db *sqlx.DB
}

var _ grading.Repository = (*gradingRepository)(nil) // interface compliance check

func NewGradingRepository(db *sqlx.DB) *gradingRepository {
	return &gradingRepository{db: db}
}

// ReplaceScheme holds one transaction across the delete and all inserts;
// concurrent readers either see the old scheme or the new one, never a
// partial set.
func (repo gradingRepository) ReplaceScheme(ctx context.Context, sectionID int, s grading.Scheme) error {
	return core.Atomic(ctx, repo.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM grading_scheme WHERE section_id = $1`, sectionID); err != nil {
			return errors.Wrap(err, "deleting grading scheme")
		}
		for comp, weight := range s {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO grading_scheme (section_id, component, percentage)
				VALUES ($1, $2, $3)`,
				sectionID, comp, weight); err != nil {
				return errors.Wrapf(err, "inserting grading component %q", comp)
			}
		}
		return nil
	})
}

func (repo gradingRepository) GetScheme(ctx context.Context, sectionID int) (grading.Scheme, error) {
	rows := make([]struct {
		Component  string `db:"component"`
		Percentage int    `db:"percentage"`
	}, 0)
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT component, percentage FROM grading_scheme WHERE section_id = $1`, sectionID)
	if err != nil {
		return nil, errors.Wrap(err, "querying grading scheme")
	}

	s := make(grading.Scheme, len(rows))
	for _, row := range rows {
		s[row.Component] = row.Percentage
	}
	return s, nil
}

func (repo gradingRepository) UpsertGrades(ctx context.Context, rec grading.GradeRecord) error {
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO grades (section_id, student_id, quiz, midterm, endsem, final)
		VALUES (:section_id, :student_id, :quiz, :midterm, :endsem, :final)
		ON CONFLICT (section_id, student_id) DO UPDATE SET
			quiz = EXCLUDED.quiz,
			midterm = EXCLUDED.midterm,
			endsem = EXCLUDED.endsem,
			final = EXCLUDED.final`,
		rec,
	)
	return errors.Wrap(err, "upserting grades")
}

func (repo gradingRepository) QueryGradesBySection(ctx context.Context, sectionID int) ([]grading.GradeRecord, error) {
	recs := make([]grading.GradeRecord, 0)
	err := repo.db.SelectContext(ctx, &recs, `
		SELECT section_id, student_id, quiz, midterm, endsem, final
		FROM grades WHERE section_id = $1`, sectionID)
	return recs, errors.Wrap(err, "querying grades")
}

package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mwalimu/gradebook/core/assessment"
)

type assessmentRepository struct {
	db *sqlx.DB
}

var _ assessment.Repository = (*assessmentRepository)(nil) // interface compliance check

func NewAssessmentRepository(db *sqlx.DB) *assessmentRepository {
	return &assessmentRepository{db: db}
}

func (repo assessmentRepository) UpdateScore(ctx context.Context, sectionID int, studentID, typ string, score float64) (int64, error) {
	res, err := repo.db.ExecContext(ctx, `
		UPDATE assessments SET score = $4
		WHERE section_id = $1 AND student_id = $2 AND assessment_type = $3`,
		sectionID, studentID, typ, score,
	)
	if err != nil {
		return 0, errors.Wrap(err, "updating assessment score")
	}
	return res.RowsAffected()
}

func (repo assessmentRepository) InsertScore(ctx context.Context, sc assessment.Score) error {
	sc.ID = uuid.New().String()
	sc.RecordedAt = time.Now().UTC()
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO assessments (id, section_id, student_id, assessment_type, score, recorded_at)
		VALUES (:id, :section_id, :student_id, :assessment_type, :score, :recorded_at)`,
		sc,
	)
	return errors.Wrap(err, "inserting assessment score")
}

func (repo assessmentRepository) QueryScoresBySection(ctx context.Context, sectionID int) ([]assessment.Score, error) {
	scores := make([]assessment.Score, 0)
	err := repo.db.SelectContext(ctx, &scores, `
		SELECT id, section_id, student_id, assessment_type, score, recorded_at
		FROM assessments WHERE section_id = $1`, sectionID)
	return scores, errors.Wrap(err, "querying assessment scores")
}

func (repo assessmentRepository) AverageScore(ctx context.Context, sectionID int, studentID, typ string) (float64, int64, error) {
	var agg struct {
		Avg   float64 `db:"avg"`
		Count int64   `db:"count"`
	}
	err := repo.db.GetContext(ctx, &agg, `
		SELECT COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count
		FROM assessments
		WHERE section_id = $1 AND student_id = $2 AND assessment_type = $3`,
		sectionID, studentID, typ,
	)
	if err != nil {
		return 0, 0, errors.Wrap(err, "averaging assessment scores")
	}
	return agg.Avg, agg.Count, nil
}

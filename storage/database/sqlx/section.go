package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/mwalimu/gradebook/core/section"
)

type sectionRepository struct {
	db *sqlx.DB
}

var _ section.Repository = (*sectionRepository)(nil) // interface compliance check

func NewSectionRepository(db *sqlx.DB) *sectionRepository {
	return &sectionRepository{db: db}
}

// enrollment_open is an integer column for the sake of legacy databases;
// selects normalize it to a boolean.
const sectionColumns = `
	section_id, course_code, title, instructor_id, term, year, day_time, room,
	capacity, (enrollment_open <> 0) AS enrollment_open`

func (repo sectionRepository) CreateSection(ctx context.Context, sec section.Section) (section.Section, error) {
	err := repo.db.GetContext(ctx, &sec.ID, `
		INSERT INTO sections
			(course_code, title, instructor_id, term, year, day_time, room, capacity, enrollment_open)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING section_id`,
		sec.CourseCode, sec.Title, sec.InstructorID, sec.Term, sec.Year,
		sec.DayTime, sec.Room, sec.Capacity, boolToInt(sec.EnrollmentOpen),
	)
	if err != nil {
		return section.Section{}, errors.Wrap(err, "inserting section")
	}
	return sec, nil
}

func (repo sectionRepository) QueryAllSections(ctx context.Context) ([]section.Section, error) {
	secs := make([]section.Section, 0)
	err := repo.db.SelectContext(ctx, &secs, `SELECT `+sectionColumns+` FROM sections`)
	return secs, errors.Wrap(err, "querying sections")
}

func (repo sectionRepository) QuerySectionsByInstructor(ctx context.Context, instructorID int, term string, year int) ([]section.Section, error) {
	secs := make([]section.Section, 0)
	err := repo.db.SelectContext(ctx, &secs, `
		SELECT `+sectionColumns+`
		FROM sections
		WHERE instructor_id = $1 AND term = $2 AND year = $3`,
		instructorID, term, year,
	)
	return secs, errors.Wrap(err, "querying sections by instructor")
}

func (repo sectionRepository) UpdateSectionCapacity(ctx context.Context, id, capacity int) (int64, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE sections SET capacity = $2 WHERE section_id = $1`, id, capacity)
	if err != nil {
		return 0, errors.Wrap(err, "updating section capacity")
	}
	return res.RowsAffected()
}

func (repo sectionRepository) SetSectionEnrollmentOpen(ctx context.Context, id int, open bool) (int64, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE sections SET enrollment_open = $2 WHERE section_id = $1`, id, boolToInt(open))
	if err != nil {
		return 0, errors.Wrap(err, "updating section enrollment_open")
	}
	return res.RowsAffected()
}

func (repo sectionRepository) GetSectionEnrollmentOpen(ctx context.Context, id int) (bool, error) {
	// null.Int: drifted legacy rows may hold NULL after a backfilled column
	// add; NULL counts as open.
	var open null.Int
	err := repo.db.GetContext(ctx,
		&open, `SELECT enrollment_open FROM sections WHERE section_id = $1`, id)
	if err == sql.ErrNoRows {
		return false, section.ErrNotFound
	}
	if err != nil {
		return false, errors.Wrap(err, "reading section enrollment_open")
	}
	if !open.Valid {
		return true, nil
	}
	return open.Int != 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package inmemdb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mwalimu/gradebook/core/assessment"
)

type assessmentRepository struct {
	db *assessmentTable
}

var _ assessment.Repository = (*assessmentRepository)(nil) // interface compliance check

func NewAssessmentRepository(db *DB) *assessmentRepository {
	return &assessmentRepository{db: db.assessments}
}

func (repo *assessmentRepository) UpdateScore(_ context.Context, sectionID int, studentID, typ string, score float64) (int64, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var n int64
	for i := range repo.db.t {
		sc := &repo.db.t[i]
		if sc.SectionID == sectionID && sc.StudentID == studentID && sc.Type == typ {
			sc.Score = score
			n++
		}
	}
	return n, nil
}

func (repo *assessmentRepository) InsertScore(_ context.Context, sc assessment.Score) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sc.ID = uuid.New().String()
	sc.RecordedAt = time.Now().UTC()
	repo.db.t = append(repo.db.t, sc)
	return nil
}

func (repo *assessmentRepository) QueryScoresBySection(_ context.Context, sectionID int) ([]assessment.Score, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	scores := make([]assessment.Score, 0)
	for _, sc := range repo.db.t {
		if sc.SectionID == sectionID {
			scores = append(scores, sc)
		}
	}
	return scores, nil
}

func (repo *assessmentRepository) AverageScore(_ context.Context, sectionID int, studentID, typ string) (float64, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var sum float64
	var n int64
	for _, sc := range repo.db.t {
		if sc.SectionID == sectionID && sc.StudentID == studentID && sc.Type == typ {
			sum += sc.Score
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return sum / float64(n), n, nil
}

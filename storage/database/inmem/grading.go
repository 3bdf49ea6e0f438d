package inmemdb

import (
	"context"

	"github.com/mwalimu/gradebook/core/grading"
)

type gradingRepository struct {
	schemes *schemeTable
	grades  *gradeTable
}

var _ grading.Repository = (*gradingRepository)(nil) // interface compliance check

func NewGradingRepository(db *DB) *gradingRepository {
	return &gradingRepository{schemes: db.schemes, grades: db.grades}
}

func (repo *gradingRepository) ReplaceScheme(_ context.Context, sectionID int, s grading.Scheme) error {
	repo.schemes.mutex.Lock()
	defer repo.schemes.mutex.Unlock()

	repo.schemes.t[sectionID] = s.Clone()
	return nil
}

func (repo *gradingRepository) GetScheme(_ context.Context, sectionID int) (grading.Scheme, error) {
	repo.schemes.mutex.RLock()
	defer repo.schemes.mutex.RUnlock()

	if s, ok := repo.schemes.t[sectionID]; ok {
		return s.Clone(), nil
	}
	return grading.Scheme{}, nil
}

func (repo *gradingRepository) UpsertGrades(_ context.Context, rec grading.GradeRecord) error {
	repo.grades.mutex.Lock()
	defer repo.grades.mutex.Unlock()

	repo.grades.t[gradeKey{rec.SectionID, rec.StudentID}] = rec
	return nil
}

func (repo *gradingRepository) QueryGradesBySection(_ context.Context, sectionID int) ([]grading.GradeRecord, error) {
	repo.grades.mutex.RLock()
	defer repo.grades.mutex.RUnlock()

	recs := make([]grading.GradeRecord, 0)
	for key, rec := range repo.grades.t {
		if key.sectionID == sectionID {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

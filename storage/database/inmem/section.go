package inmemdb

import (
	"context"

	"github.com/mwalimu/gradebook/core/section"
)

type sectionRepository struct {
	db *sectionTable
}

var _ section.Repository = (*sectionRepository)(nil) // interface compliance check

func NewSectionRepository(db *DB) *sectionRepository {
	return &sectionRepository{db: db.sections}
}

func (repo *sectionRepository) CreateSection(_ context.Context, sec section.Section) (section.Section, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.seq++
	sec.ID = repo.db.seq
	repo.db.t[sec.ID] = &sec
	return sec, nil
}

func (repo *sectionRepository) QueryAllSections(context.Context) ([]section.Section, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	secs := make([]section.Section, 0, len(repo.db.t))
	for _, sec := range repo.db.t {
		secs = append(secs, *sec)
	}
	return secs, nil
}

func (repo *sectionRepository) QuerySectionsByInstructor(_ context.Context, instructorID int, term string, year int) ([]section.Section, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	secs := make([]section.Section, 0)
	for _, sec := range repo.db.t {
		if sec.InstructorID == instructorID && sec.Term == term && sec.Year == year {
			secs = append(secs, *sec)
		}
	}
	return secs, nil
}

func (repo *sectionRepository) UpdateSectionCapacity(_ context.Context, id, capacity int) (int64, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sec, ok := repo.db.t[id]
	if !ok {
		return 0, nil
	}
	sec.Capacity = capacity
	return 1, nil
}

func (repo *sectionRepository) SetSectionEnrollmentOpen(_ context.Context, id int, open bool) (int64, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sec, ok := repo.db.t[id]
	if !ok {
		return 0, nil
	}
	sec.EnrollmentOpen = open
	return 1, nil
}

func (repo *sectionRepository) GetSectionEnrollmentOpen(_ context.Context, id int) (bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	sec, ok := repo.db.t[id]
	if !ok {
		return false, section.ErrNotFound
	}
	return sec.EnrollmentOpen, nil
}

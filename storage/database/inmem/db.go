// Package inmemdb holds in-memory repository implementations mirroring the
// PostgreSQL ones, used by service tests.
package inmemdb

import (
	"sync"

	"github.com/mwalimu/gradebook/core/assessment"
	"github.com/mwalimu/gradebook/core/grading"
	"github.com/mwalimu/gradebook/core/section"
)

type (
	DB struct {
		sections    *sectionTable
		schemes     *schemeTable
		grades      *gradeTable
		assessments *assessmentTable
		settings    *settingsTable
	}

	sectionTable struct {
		t     map[int]*section.Section
		seq   int
		mutex sync.RWMutex
	}

	schemeTable struct {
		t     map[int]grading.Scheme // keyed by section id
		mutex sync.RWMutex
	}

	gradeKey struct {
		sectionID int
		studentID string
	}

	gradeTable struct {
		t     map[gradeKey]grading.GradeRecord
		mutex sync.RWMutex
	}

	assessmentTable struct {
		t     []assessment.Score
		mutex sync.RWMutex
	}

	settingsTable struct {
		t     map[string]string
		mutex sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		sections:    &sectionTable{t: make(map[int]*section.Section)},
		schemes:     &schemeTable{t: make(map[int]grading.Scheme)},
		grades:      &gradeTable{t: make(map[gradeKey]grading.GradeRecord)},
		assessments: &assessmentTable{},
		settings:    &settingsTable{t: make(map[string]string)},
	}
}

package assessment

import "time"

// Score is one scored evaluation event of a given type for a student in a
// section. RecordedAt is part of the identity, so multiple historical rows
// may exist per (section, student, type).
type Score struct {
	ID         string    `json:"id" db:"id"`
	SectionID  int       `json:"section_id" db:"section_id"`
	StudentID  string    `json:"student_id" db:"student_id"`
	Type       string    `json:"assessment_type" db:"assessment_type"`
	Score      float64   `json:"score" db:"score"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"` // UTC
}

package section

import (
	"github.com/mwalimu/gradebook/core"
)

// Section is one offering of a course with an instructor, schedule and
// capacity. The ID is globally unique and immutable once created; sections
// are never hard-deleted.
type Section struct {
	ID             int    `json:"id" db:"section_id"`
	CourseCode     string `json:"course_code" db:"course_code"`
	Title          string `json:"title" db:"title"`
	InstructorID   int    `json:"instructor_id" db:"instructor_id"`
	Term           string `json:"term" db:"term"`
	Year           int    `json:"year" db:"year"`
	DayTime        string `json:"day_time" db:"day_time"`
	Room           string `json:"room" db:"room"`
	Capacity       int    `json:"capacity" db:"capacity"`
	EnrollmentOpen bool   `json:"enrollment_open" db:"enrollment_open"`
}

// NewSection contains information needed to register a new Section.
type NewSection struct {
	CourseCode   string `json:"course_code" validate:"required"`
	Title        string `json:"title" validate:"required"`
	InstructorID int    `json:"instructor_id" validate:"required,gt=0"`
	Term         string `json:"term" validate:"required"`
	Year         int    `json:"year" validate:"required,gte=1990"`
	DayTime      string `json:"day_time"`
	Room         string `json:"room"`
	Capacity     int    `json:"capacity" validate:"required,gt=0"`
}

func (ns *NewSection) Validate() error {
	ns.CourseCode = core.CleanString(ns.CourseCode)
	ns.Title = core.CleanString(ns.Title)
	ns.Term = core.CleanString(ns.Term, true /* lower */)
	ns.Room = core.CleanString(ns.Room)
	return core.TranslateError(core.Validate.Struct(ns))
}

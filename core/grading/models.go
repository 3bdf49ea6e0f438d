package grading

// Grading components. A Scheme may name others; only these four map to raw
// GradeRecord fields, anything else contributes zero.
const (
	ComponentQuiz    = "quiz"
	ComponentMidterm = "midterm"
	ComponentEndsem  = "endsem"
	ComponentFinal   = "final"
)

// Scheme maps component names to integer percentage weights for one section.
// The persisted mapping is the source of truth for grade computation.
type Scheme map[string]int

// WeightSum returns the total percentage allocated by the scheme.
func (s Scheme) WeightSum() int {
	var sum int
	for _, w := range s {
		sum += w
	}
	return sum
}

// Clone returns a copy so callers can hand schemes around without aliasing
// the stored map.
func (s Scheme) Clone() Scheme {
	c := make(Scheme, len(s))
	for comp, w := range s {
		c[comp] = w
	}
	return c
}

// GradeRecord holds a student's raw component scores for one section.
// At most one record exists per (section, student); saves fully replace it.
type GradeRecord struct {
	SectionID int     `json:"section_id" db:"section_id"`
	StudentID string  `json:"student_id" db:"student_id"`
	Quiz      float64 `json:"quiz" db:"quiz"`
	Midterm   float64 `json:"midterm" db:"midterm"`
	Endsem    float64 `json:"endsem" db:"endsem"`
	Final     float64 `json:"final" db:"final"`
}

func (rec GradeRecord) rawValues() map[string]float64 {
	return map[string]float64{
		ComponentQuiz:    rec.Quiz,
		ComponentMidterm: rec.Midterm,
		ComponentEndsem:  rec.Endsem,
		ComponentFinal:   rec.Final,
	}
}

// Weighted combines the record's raw scores with the scheme's weights into a
// single grade:
//
//	Σ over components c in scheme: raw(c) * weight(c) / 100
//
// Components in the scheme but absent from the record contribute zero; record
// fields absent from the scheme are ignored. No rounding is applied, display
// precision is the caller's call.
func (s Scheme) Weighted(rec GradeRecord) float64 {
	raw := rec.rawValues()
	var grade float64
	for comp, weight := range s {
		grade += raw[comp] * float64(weight) / 100
	}
	return grade
}

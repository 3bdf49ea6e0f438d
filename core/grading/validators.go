package grading

import (
	"fmt"

	"github.com/mwalimu/gradebook/core"
)

// Validate checks that the scheme is a complete 100% allocation: every
// component name is a normalized identifier, every weight is non-negative and
// the weights sum to exactly 100. An under- or over-weighted scheme misstates
// every grade computed from it, so this runs at save time, not compute time.
func (s Scheme) Validate() error {
	if len(s) == 0 {
		return core.NewValidationError(ErrInvalidScheme,
			core.FieldError{Field: "components", Error: "at least one component is required"})
	}

	var flds []core.FieldError
	for comp, weight := range s {
		if err := core.Validate.Var(comp, "required,component"); err != nil {
			flds = append(flds, core.FieldError{Field: comp, Error: "invalid component name"})
		}
		if weight < 0 {
			flds = append(flds, core.FieldError{Field: comp, Error: "weight must be non-negative"})
		}
	}
	if sum := s.WeightSum(); sum != 100 {
		flds = append(flds, core.FieldError{
			Field: "components",
			Error: fmt.Sprintf("weights must sum to 100, got %d", sum),
		})
	}

	if len(flds) > 0 {
		return core.NewValidationError(ErrInvalidScheme, flds...)
	}
	return nil
}

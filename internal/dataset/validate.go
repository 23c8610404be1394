package dataset

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// ValidationError aggregates every problem found in a set of session
// templates so a deployer can fix them all at once instead of one
// error at a time.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("found %d invalid session template(s):\n- %s", len(v.Errors), strings.Join(v.Errors, "\n- "))
}

// ValidateTemplates checks structural integrity (required fields,
// multiplicity >= 1, non-empty students) and the uniqueness-within-a-
// template rule from the data model before any template is expanded.
func ValidateTemplates(templates []SessionTemplate) error {
	var errs []string

	for i, t := range templates {
		if err := structValidator.Struct(t); err != nil {
			errs = append(errs, fmt.Sprintf("template %d (%s/%s): %v", i, t.Teacher, t.Code, err))
			continue
		}
		seen := make(map[string]bool, len(t.Students))
		for _, s := range t.Students {
			if seen[s] {
				errs = append(errs, fmt.Sprintf("template %d (%s/%s): duplicate student %q", i, t.Teacher, t.Code, s))
			}
			seen[s] = true
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

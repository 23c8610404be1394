package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileSchema is the on-disk shape of an external dataset file: the
// same information the fixture hardcodes, made swappable without a
// recompile.
type fileSchema struct {
	Days                []Day                    `json:"days"`
	SlotsByDay          map[Day][]Slot           `json:"slots_by_day"`
	TeacherAvailability map[string]map[Day][]Slot `json:"teacher_availability"`
	SessionTemplates    []SessionTemplate        `json:"session_templates"`
}

// Load reads a Dataset from a JSON file on disk, validating every
// session template before expansion. A malformed or missing file is a
// fatal input-infeasibility condition: nothing downstream can recover
// from it.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file %s: %w", path, err)
	}

	var schema fileSchema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("parsing dataset file %s: %w", path, err)
	}

	if err := ValidateTemplates(schema.SessionTemplates); err != nil {
		return nil, fmt.Errorf("validating dataset file %s: %w", path, err)
	}

	days := schema.Days
	if len(days) == 0 {
		days = Days
	}

	return Build(days, schema.SlotsByDay, schema.TeacherAvailability, schema.SessionTemplates), nil
}

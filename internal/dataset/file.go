package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/leadscope/leadscope-go/internal/model"
	"github.com/leadscope/leadscope-go/pkg/fingerprint"
)

//go:embed leads.json
var embeddedLeads []byte

// LoadFile loads the lead dataset from a JSON file. With an empty path the
// embedded sample dataset is used, so the server starts with zero config.
func LoadFile(path string) (*Dataset, error) {
	raw := embeddedLeads
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset file: %w", err)
		}
		raw = b
	}

	var leads []model.Lead
	if err := json.Unmarshal(raw, &leads); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	if err := Validate(leads); err != nil {
		return nil, err
	}

	return &Dataset{
		Leads:   leads,
		Version: fingerprint.Dataset(raw),
	}, nil
}

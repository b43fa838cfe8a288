package dataset

import (
	"errors"
	"fmt"

	"github.com/leadscope/leadscope-go/internal/model"
)

// ErrEmptyViewHistory marks a lead record whose recent-view sequence is
// empty. Average views would be undefined for such a record, so loading
// fails loudly instead of letting a zero leak into the derived metrics.
var ErrEmptyViewHistory = errors.New("lead has no recent view history")

// ErrDuplicateHandle marks two lead records sharing a handle. The handle is
// the identity key of the collection and must be unique.
var ErrDuplicateHandle = errors.New("duplicate lead handle")

// Dataset is the immutable lead collection loaded once at startup.
type Dataset struct {
	Leads   []model.Lead
	Version string
}

// Validate checks the data contract on a raw lead collection: every record
// carries a non-empty unique handle and a non-empty recent-view sequence.
func Validate(leads []model.Lead) error {
	if len(leads) == 0 {
		return errors.New("dataset contains no leads")
	}

	seen := make(map[string]struct{}, len(leads))
	for i, l := range leads {
		if l.Handle == "" {
			return fmt.Errorf("lead %d (%q): handle is required", i, l.ChannelName)
		}
		if _, dup := seen[l.Handle]; dup {
			return fmt.Errorf("lead %d (%s): %w", i, l.Handle, ErrDuplicateHandle)
		}
		seen[l.Handle] = struct{}{}

		if len(l.RecentViews) == 0 {
			return fmt.Errorf("lead %d (%s): %w", i, l.Handle, ErrEmptyViewHistory)
		}
	}
	return nil
}

package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadscope/leadscope-go/internal/model"
	"github.com/leadscope/leadscope-go/pkg/fingerprint"
)

// PostgresSource loads the lead dataset from a Postgres table. The table is
// read in full, once, at startup — the collection is static for the lifetime
// of the process, same as the file source.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Load reads every lead row ordered by insertion and validates the data
// contract before returning. The dataset version is derived from the loaded
// rows so file- and table-backed deployments report comparable versions.
func (s *PostgresSource) Load(ctx context.Context) (*Dataset, error) {
	query := `
		SELECT channel_name, handle, url, email, notes, outreach_angle,
		       niche, country, subscribers, subscribers_label, last_upload,
		       recent_views
		FROM leads
		ORDER BY id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var l model.Lead
		err := rows.Scan(
			&l.ChannelName, &l.Handle, &l.URL, &l.Email, &l.Notes, &l.OutreachAngle,
			&l.Niche, &l.Country, &l.Subscribers, &l.SubscribersLabel, &l.LastUpload,
			&l.RecentViews,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := Validate(leads); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(leads)
	if err != nil {
		return nil, fmt.Errorf("fingerprint dataset: %w", err)
	}

	return &Dataset{
		Leads:   leads,
		Version: fingerprint.Dataset(raw),
	}, nil
}

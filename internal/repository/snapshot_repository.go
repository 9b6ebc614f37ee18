package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"curvewatch/internal/model"
)

type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// yieldRecord is the persisted wire shape of one curve point.
type yieldRecord struct {
	Maturity string  `json:"maturity"`
	Yield    float64 `json:"yield"`
	SeriesID string  `json:"seriesId"`
}

// SaveYieldCurve writes the day's snapshot, replacing any existing
// record for the same date.
func (r *SnapshotRepository) SaveYieldCurve(snapshot *model.CurveSnapshot) error {
	records := make([]yieldRecord, 0, len(snapshot.Points))
	for _, p := range snapshot.Points {
		records = append(records, yieldRecord{
			Maturity: p.Maturity,
			Yield:    p.Value,
			SeriesID: p.SeriesID,
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO daily_record(date, record_type, payload, updated_at)
		VALUES($1::date, $2, $3, $4)
		ON CONFLICT (date, record_type) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`, snapshot.Date, model.RecordTypeYieldCurve, payload, snapshot.UpdatedAt)
	return err
}

// GetYieldCurve returns the snapshot for a date, or (nil, nil) when
// none exists.
func (r *SnapshotRepository) GetYieldCurve(date string) (*model.CurveSnapshot, error) {
	var payload []byte
	var updatedAt time.Time
	err := r.db.QueryRow(`
		SELECT payload, updated_at
		FROM daily_record
		WHERE date = $1::date AND record_type = $2
	`, date, model.RecordTypeYieldCurve).Scan(&payload, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []yieldRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}

	points := make([]model.YieldPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, model.YieldPoint{
			Maturity:     rec.Maturity,
			SeriesID:     rec.SeriesID,
			Value:        rec.Yield,
			ObservedDate: date,
		})
	}

	return &model.CurveSnapshot{
		Date:      date,
		Points:    points,
		UpdatedAt: updatedAt,
	}, nil
}

func (r *SnapshotRepository) SaveNewsBundle(bundle *model.NewsBundle) error {
	payload, err := json.Marshal(bundle.Items)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO daily_record(date, record_type, payload, updated_at)
		VALUES($1::date, $2, $3, $4)
		ON CONFLICT (date, record_type) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`, bundle.Date, model.RecordTypeNews, payload, bundle.UpdatedAt)
	return err
}

func (r *SnapshotRepository) GetNewsBundle(date string) (*model.NewsBundle, error) {
	var payload []byte
	var updatedAt time.Time
	err := r.db.QueryRow(`
		SELECT payload, updated_at
		FROM daily_record
		WHERE date = $1::date AND record_type = $2
	`, date, model.RecordTypeNews).Scan(&payload, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []model.NewsItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, err
	}

	return &model.NewsBundle{
		Date:      date,
		Items:     items,
		UpdatedAt: updatedAt,
	}, nil
}

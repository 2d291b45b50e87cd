package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createTreatments = `
CREATE TABLE IF NOT EXISTS treatments (
  key TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  surface_class TEXT NOT NULL,
  tier TEXT NOT NULL,
  sound_reduction_db REAL NOT NULL,
  frequency_min_hz REAL NOT NULL,
  frequency_max_hz REAL NOT NULL,
  total_unit_cost REAL NOT NULL,
  thickness_m REAL NOT NULL,
  installation_days REAL NOT NULL,
  maintenance_level TEXT NOT NULL DEFAULT 'low',
  durability REAL NOT NULL DEFAULT 0,
  impact_resistance REAL NOT NULL DEFAULT 0,
  stc_rating INTEGER NOT NULL DEFAULT 0,
  labor_rate REAL NOT NULL DEFAULT 0,
  materials_json TEXT NOT NULL DEFAULT '[]',
  notes_json TEXT NOT NULL DEFAULT '[]'
);
`
	if _, err := s.db.Exec(createTreatments); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_treatments_class_tier ON treatments(surface_class, tier);`); err != nil {
		return err
	}

	const createEstimates = `
CREATE TABLE IF NOT EXISTS estimates (
  id TEXT PRIMARY KEY,
  created_at TEXT NOT NULL,
  total_cost REAL NOT NULL,
  payload_json TEXT NOT NULL
);
`
	if _, err := s.db.Exec(createEstimates); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_estimates_created_at ON estimates(created_at);`); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) CountTreatments() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM treatments`).Scan(&n)
	return n, err
}

// UpsertTreatments inserts a catalog without duplicating by key.
func (s *SQLiteStore) UpsertTreatments(items []domain.Treatment) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR IGNORE INTO treatments
(key, name, surface_class, tier, sound_reduction_db, frequency_min_hz, frequency_max_hz,
 total_unit_cost, thickness_m, installation_days, maintenance_level, durability,
 impact_resistance, stc_rating, labor_rate, materials_json, notes_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range items {
		mats, _ := json.Marshal(t.Materials)
		notes, _ := json.Marshal(t.Notes)

		if _, err := stmt.Exec(
			t.Key, t.Name, string(t.SurfaceClass), string(t.Tier),
			t.SoundReductionDB, t.FrequencyMinHz, t.FrequencyMaxHz,
			t.TotalUnitCost, t.ThicknessM, t.InstallationDays, t.MaintenanceLevel,
			t.Durability, t.ImpactResistance, t.STCRating, t.LaborRate,
			string(mats), string(notes),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) ListTreatments() ([]domain.Treatment, error) {
	rows, err := s.db.Query(`
SELECT key, name, surface_class, tier, sound_reduction_db, frequency_min_hz, frequency_max_hz,
       total_unit_cost, thickness_m, installation_days, maintenance_level, durability,
       impact_resistance, stc_rating, labor_rate, materials_json, notes_json
FROM treatments
ORDER BY key
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Treatment
	for rows.Next() {
		var t domain.Treatment
		var class, tier, matsJSON, notesJSON string

		if err := rows.Scan(
			&t.Key, &t.Name, &class, &tier,
			&t.SoundReductionDB, &t.FrequencyMinHz, &t.FrequencyMaxHz,
			&t.TotalUnitCost, &t.ThicknessM, &t.InstallationDays, &t.MaintenanceLevel,
			&t.Durability, &t.ImpactResistance, &t.STCRating, &t.LaborRate,
			&matsJSON, &notesJSON,
		); err != nil {
			return nil, err
		}
		t.SurfaceClass = domain.SurfaceClass(class)
		t.Tier = domain.Tier(tier)
		_ = json.Unmarshal([]byte(matsJSON), &t.Materials)
		_ = json.Unmarshal([]byte(notesJSON), &t.Notes)

		out = append(out, t)
	}
	return out, rows.Err()
}

// SaveEstimate assigns a ULID and timestamp, persists the estimate, and
// returns it with both fields filled.
func (s *SQLiteStore) SaveEstimate(e domain.Estimate) (domain.Estimate, error) {
	e.ID = ulid.Make().String()
	e.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(e)
	if err != nil {
		return domain.Estimate{}, err
	}
	_, err = s.db.Exec(`
INSERT INTO estimates (id, created_at, total_cost, payload_json)
VALUES (?, ?, ?, ?)
`, e.ID, e.CreatedAt, e.TotalCost, string(payload))
	return e, err
}

func (s *SQLiteStore) GetEstimate(id string) (domain.Estimate, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload_json FROM estimates WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return domain.Estimate{}, false, nil
	}
	if err != nil {
		return domain.Estimate{}, false, err
	}
	var e domain.Estimate
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return domain.Estimate{}, false, err
	}
	return e, true, nil
}

func (s *SQLiteStore) DeleteEstimate(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM estimates WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) ListEstimates(limit, offset int) ([]domain.Estimate, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM estimates`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(`
SELECT payload_json FROM estimates
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Estimate
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, 0, err
		}
		var e domain.Estimate
		if err := json.Unmarshal([]byte(payload), &e); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

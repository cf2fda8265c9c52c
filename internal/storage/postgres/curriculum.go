package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/innerascend/ascend/internal/models"
)

func (s *Store) GetModules() ([]models.ModuleDef, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, sequence_order, duration_days
		FROM modules ORDER BY sequence_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []models.ModuleDef
	for rows.Next() {
		var m models.ModuleDef
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.SequenceOrder, &m.DurationDays); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (s *Store) GetModuleBySequence(sequence int) (models.ModuleDef, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, sequence_order, duration_days
		FROM modules WHERE sequence_order = $1`, sequence)

	var m models.ModuleDef
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.SequenceOrder, &m.DurationDays)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ModuleDef{}, fmt.Errorf("module %d not found", sequence)
	}
	return m, err
}

func (s *Store) GetDayProgress() ([]models.DayProgressRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, module_id, day_number, completed_at
		FROM day_progress ORDER BY module_id, day_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.DayProgressRecord
	for rows.Next() {
		var r models.DayProgressRecord
		var completedAt string
		if err := rows.Scan(&r.ID, &r.ModuleID, &r.DayNumber, &completedAt); err != nil {
			return nil, err
		}
		r.CompletedAt, err = time.Parse(time.RFC3339, completedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completed_at for progress %s: %w", r.ID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// MarkDayComplete inserts one progress record; a unique-violation means the
// day was already completed.
func (s *Store) MarkDayComplete(rec models.DayProgressRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO day_progress (id, module_id, day_number, completed_at)
		VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.ModuleID, rec.DayNumber, rec.CompletedAt.Format(time.RFC3339))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("day %d is already completed", rec.DayNumber)
		}
		return fmt.Errorf("failed to mark day complete: %w", err)
	}
	return nil
}

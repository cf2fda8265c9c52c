package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/innerascend/ascend/internal/models"
)

// RecordPractice upserts the practice row for a day, incrementing the
// counter when the day already has one.
func (s *Store) RecordPractice(day string, kind models.PracticeKind) (models.PracticeRecord, error) {
	now := time.Now().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO practice_records (id, day, kind, count, created_at, updated_at)
		VALUES ($1, $2, $3, 1, $4, $5)
		ON CONFLICT (day) DO UPDATE SET
			count = practice_records.count + 1,
			kind = EXCLUDED.kind,
			updated_at = EXCLUDED.updated_at`,
		uuid.New().String(), day, string(kind), now, now)
	if err != nil {
		return models.PracticeRecord{}, fmt.Errorf("failed to record practice: %w", err)
	}
	return s.getPracticeRecord(day)
}

func (s *Store) getPracticeRecord(day string) (models.PracticeRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, day, kind, count, created_at, updated_at
		FROM practice_records WHERE day = $1`, day)

	var r models.PracticeRecord
	var kind, createdAt, updatedAt string
	if err := row.Scan(&r.ID, &r.Day, &kind, &r.Count, &createdAt, &updatedAt); err != nil {
		return models.PracticeRecord{}, err
	}
	r.Kind = models.PracticeKind(kind)

	var err error
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.PracticeRecord{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.PracticeRecord{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return r, nil
}

func (s *Store) GetPracticeRecords() ([]models.PracticeRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, day, kind, count, created_at, updated_at
		FROM practice_records ORDER BY day DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PracticeRecord
	for rows.Next() {
		var r models.PracticeRecord
		var kind, createdAt, updatedAt string
		if err := rows.Scan(&r.ID, &r.Day, &kind, &r.Count, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		r.Kind = models.PracticeKind(kind)
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for practice %s: %w", r.ID, err)
		}
		r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at for practice %s: %w", r.ID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

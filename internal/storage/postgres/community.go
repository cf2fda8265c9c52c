package postgres

import (
	"fmt"
	"time"

	"github.com/innerascend/ascend/internal/models"
)

// Favorites

func (s *Store) GetFavorites() ([]models.Favorite, error) {
	rows, err := s.db.Query(`
		SELECT id, item_type, item_id, created_at
		FROM favorites ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []models.Favorite
	for rows.Next() {
		var f models.Favorite
		var itemType, createdAt string
		if err := rows.Scan(&f.ID, &itemType, &f.ItemID, &createdAt); err != nil {
			return nil, err
		}
		f.ItemType = models.ItemType(itemType)
		f.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for favorite %s: %w", f.ID, err)
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

func (s *Store) AddFavorite(f models.Favorite) error {
	_, err := s.db.Exec(`
		INSERT INTO favorites (id, item_type, item_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_type, item_id) DO NOTHING`,
		f.ID, string(f.ItemType), f.ItemID, f.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) RemoveFavorite(itemType models.ItemType, itemID string) error {
	result, err := s.db.Exec(`
		DELETE FROM favorites WHERE item_type = $1 AND item_id = $2`,
		string(itemType), itemID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("favorite not found")
	}
	return nil
}

// Check-ins

func (s *Store) AddCheckIn(c models.CheckIn) error {
	_, err := s.db.Exec(`
		INSERT INTO checkins (id, day, mood, note, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Day, string(c.Mood), c.Note, c.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetCheckIns(startDay, endDay string) ([]models.CheckIn, error) {
	rows, err := s.db.Query(`
		SELECT id, day, mood, note, created_at
		FROM checkins WHERE day >= $1 AND day <= $2
		ORDER BY day DESC, created_at DESC`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkins []models.CheckIn
	for rows.Next() {
		var c models.CheckIn
		var mood, createdAt string
		if err := rows.Scan(&c.ID, &c.Day, &mood, &c.Note, &createdAt); err != nil {
			return nil, err
		}
		c.Mood = models.Mood(mood)
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for check-in %s: %w", c.ID, err)
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}

// Journal

func (s *Store) AddJournalEntry(e models.JournalEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO journal_entries (id, title, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Title, e.Body,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetJournalEntries() ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, title, body, created_at, updated_at
		FROM journal_entries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		var createdAt, updatedAt string
		if err := rows.Scan(&e.ID, &e.Title, &e.Body, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for journal entry %s: %w", e.ID, err)
		}
		e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at for journal entry %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RSVPs

func (s *Store) SaveRSVP(r models.RSVP) error {
	_, err := s.db.Exec(`
		INSERT INTO rsvps (id, event_id, status, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		r.ID, r.EventID, string(r.Status), r.UpdatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetRSVPs() ([]models.RSVP, error) {
	rows, err := s.db.Query(`
		SELECT id, event_id, status, updated_at
		FROM rsvps ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rsvps []models.RSVP
	for rows.Next() {
		var r models.RSVP
		var status, updatedAt string
		if err := rows.Scan(&r.ID, &r.EventID, &status, &updatedAt); err != nil {
			return nil, err
		}
		r.Status = models.RSVPStatus(status)
		r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at for RSVP %s: %w", r.ID, err)
		}
		rsvps = append(rsvps, r)
	}
	return rsvps, rows.Err()
}

// Reports

func (s *Store) AddReport(r models.Report) error {
	_, err := s.db.Exec(`
		INSERT INTO reports (id, item_type, item_id, reason, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, string(r.ItemType), r.ItemID, string(r.Reason), r.Details,
		r.CreatedAt.Format(time.RFC3339))
	return err
}

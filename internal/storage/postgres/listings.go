package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/innerascend/ascend/internal/models"
)

func (s *Store) AddEvent(ev models.Event) error {
	_, err := s.db.Exec(`
		INSERT INTO events (id, title, description, category, date, time, location_name,
			price_range, eco_conscious, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		ev.ID, ev.Title, ev.Description, ev.Category, ev.Date, ev.Time, ev.LocationName,
		ev.PriceRange, ev.EcoConscious, ev.Verified, ev.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetEvents() ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, category, date, time, location_name,
			price_range, eco_conscious, verified, created_at
		FROM events ORDER BY date, time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *Store) GetEvent(id string) (models.Event, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, category, date, time, location_name,
			price_range, eco_conscious, verified, created_at
		FROM events WHERE id = $1`, id)
	ev, err := scanEvent(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, fmt.Errorf("event %s not found", id)
	}
	return ev, err
}

func scanEvent(scan func(...any) error) (models.Event, error) {
	var ev models.Event
	var createdAt string
	err := scan(&ev.ID, &ev.Title, &ev.Description, &ev.Category, &ev.Date, &ev.Time,
		&ev.LocationName, &ev.PriceRange, &ev.EcoConscious, &ev.Verified, &createdAt)
	if err != nil {
		return models.Event{}, err
	}
	ev.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to parse created_at for event %s: %w", ev.ID, err)
	}
	return ev, nil
}

func (s *Store) AddPlace(p models.Place) error {
	_, err := s.db.Exec(`
		INSERT INTO places (id, name, description, category, location_name,
			price_range, eco_conscious, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Name, p.Description, p.Category, p.LocationName,
		p.PriceRange, p.EcoConscious, p.Verified, p.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetPlaces() ([]models.Place, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, category, location_name,
			price_range, eco_conscious, verified, created_at
		FROM places ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []models.Place
	for rows.Next() {
		var p models.Place
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.LocationName,
			&p.PriceRange, &p.EcoConscious, &p.Verified, &createdAt); err != nil {
			return nil, err
		}
		var err error
		p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for place %s: %w", p.ID, err)
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

func (s *Store) AddService(sv models.Service) error {
	_, err := s.db.Exec(`
		INSERT INTO services (id, name, description, category, location_name,
			price_range, eco_conscious, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		sv.ID, sv.Name, sv.Description, sv.Category, sv.LocationName,
		sv.PriceRange, sv.EcoConscious, sv.Verified, sv.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetServices() ([]models.Service, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, category, location_name,
			price_range, eco_conscious, verified, created_at
		FROM services ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var sv models.Service
		var createdAt string
		if err := rows.Scan(&sv.ID, &sv.Name, &sv.Description, &sv.Category, &sv.LocationName,
			&sv.PriceRange, &sv.EcoConscious, &sv.Verified, &createdAt); err != nil {
			return nil, err
		}
		var err error
		sv.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for service %s: %w", sv.ID, err)
		}
		services = append(services, sv)
	}
	return services, rows.Err()
}

package storage

import (
	"net/url"
	"strings"

	"github.com/innerascend/ascend/internal/models"
)

// Provider is the persistence contract. The compute packages never touch it;
// they receive rows the CLI fetched and return derived view state.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Migrate applies pending schema migrations, reporting progress
	// through logFn (nil disables progress output).
	Migrate(logFn func(string)) (int, error)

	// Practices. RecordPractice upserts the day's row, incrementing the
	// counter when the day already has one.
	RecordPractice(day string, kind models.PracticeKind) (models.PracticeRecord, error)
	GetPracticeRecords() ([]models.PracticeRecord, error)

	// Curriculum. MarkDayComplete is append-only: completing an already
	// completed day is an error, and records are never edited or removed.
	GetModules() ([]models.ModuleDef, error)
	GetModuleBySequence(sequence int) (models.ModuleDef, error)
	GetDayProgress() ([]models.DayProgressRecord, error)
	MarkDayComplete(rec models.DayProgressRecord) error

	// Listings
	AddEvent(models.Event) error
	GetEvents() ([]models.Event, error)
	GetEvent(id string) (models.Event, error)
	AddPlace(models.Place) error
	GetPlaces() ([]models.Place, error)
	AddService(models.Service) error
	GetServices() ([]models.Service, error)

	// Favorites. Toggling is a store round trip followed by a full index
	// rebuild from GetFavorites.
	GetFavorites() ([]models.Favorite, error)
	AddFavorite(models.Favorite) error
	RemoveFavorite(itemType models.ItemType, itemID string) error

	// Check-ins and journal
	AddCheckIn(models.CheckIn) error
	GetCheckIns(startDay, endDay string) ([]models.CheckIn, error)
	AddJournalEntry(models.JournalEntry) error
	GetJournalEntries() ([]models.JournalEntry, error)

	// RSVPs and reports. SaveRSVP upserts per event.
	SaveRSVP(models.RSVP) error
	GetRSVPs() ([]models.RSVP, error)
	AddReport(models.Report) error
}

// IsPostgresTarget reports whether a storage target string selects the
// PostgreSQL store.
func IsPostgresTarget(target string) bool {
	return strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those are rejected; credentials belong in the OS keyring
// or environment.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

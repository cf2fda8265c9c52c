package constants

const (
	// AppName is used for the config directory, keyring service, and logger prefix.
	AppName = "ascend"

	// DateFormat is the canonical calendar-day format (YYYY-MM-DD).
	DateFormat = "2006-01-02"

	// TimeFormat is the canonical time-of-day format (HH:MM).
	TimeFormat = "15:04"

	// DefaultKeyringUser is the account name under which the database
	// connection string is stored in the OS keyring.
	DefaultKeyringUser = "default"
)

// DayLockHours is the minimum wait between completing one curriculum day and
// unlocking the next.
const DayLockHours = 24

// Time-of-day bucket boundaries (hour of day, inclusive lower bound).
const (
	MorningStartHour   = 5
	AfternoonStartHour = 12
	EveningStartHour   = 17
)

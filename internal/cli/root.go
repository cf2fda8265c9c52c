package cli

import (
	"strings"
	"time"

	"github.com/innerascend/ascend/internal/config"
	"github.com/innerascend/ascend/internal/storage"
)

// Context is passed to every command's Run method.
type Context struct {
	Store    storage.Provider
	Config   config.Config
	Location *time.Location
}

// Now returns the current instant in the user's configured timezone. Commands
// capture it once and pass it into the compute packages, which never read the
// clock themselves.
func (c *Context) Now() time.Time {
	return time.Now().In(c.Location)
}

// Today returns the current calendar day string in the user's timezone.
func (c *Context) Today() string {
	return c.Now().Format("2006-01-02")
}

// RequiresStore reports whether a command needs a loaded, schema-validated
// store before it runs. init creates the store, migrate repairs an
// out-of-date one, doctor does its own load so it can report what is broken,
// and connection only touches the keyring.
func RequiresStore(command string) bool {
	switch strings.SplitN(command, " ", 2)[0] {
	case "init", "migrate", "doctor", "connection":
		return false
	}
	return true
}

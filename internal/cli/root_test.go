package cli

import "testing"

func TestRequiresStore(t *testing.T) {
	tests := []struct {
		command string
		want    bool
	}{
		{"practice record", true},
		{"practice stats", true},
		{"module show <sequence>", true},
		{"events list", true},
		{"fav toggle <type> <id>", true},
		{"today", true},
		// init creates the store and migrate repairs an out-of-date one;
		// loading first would reject the very state they exist to fix.
		{"init", false},
		{"migrate", false},
		// doctor loads on its own so failures become diagnostics, not a
		// fatal exit before it runs.
		{"doctor", false},
		{"connection set <conn-str>", false},
		{"connection clear", false},
		{"connection status", false},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			if got := RequiresStore(tt.command); got != tt.want {
				t.Errorf("RequiresStore(%q) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}

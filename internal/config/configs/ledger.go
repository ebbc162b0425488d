package configs

import "time"

// Ledger tunes the bulk order ledger.
type Ledger struct {
	// MaxAttempts bounds compare-and-swap attempts per mutation before a
	// conflict is reported to the caller.
	MaxAttempts    int           `env:"MAX_ATTEMPTS" envDefault:"5"`
	InitialBackoff time.Duration `env:"INITIAL_BACKOFF" envDefault:"10ms"`
	// SweepSchedule is a cron spec for failing overdue campaigns. Empty
	// disables the sweep and leaves expiry to reads and writes.
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"@every 1m"`
	// NotifyWorkers is the size of the event publishing pool.
	NotifyWorkers int `env:"NOTIFY_WORKERS" envDefault:"4"`
}

package domain

import "time"

// Receipt is one persisted lifecycle run, as stored and listed by the
// receipt store.
type Receipt struct {
	ID         int64
	Timestamp  time.Time
	Operation  Operation
	Outcome    Outcome
	FailedStep Step
	Error      string
	Warnings   int
	DataDir    string
	BinDir     string
	Root       string
	Prefix     string
}

// Package model defines shared data structures.
package model

import "time"

// Word source kinds.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceDB      = "db"
)

// Config defines practice settings.
type Config struct {
	Lang     string
	Words    int
	Duration int
	Source   string
	CapsPct  float64
	PunctPct float64
	PunctSet string
}

// Result captures the outcome of a finished typing session.
type Result struct {
	StartedAt time.Time
	EndedAt   time.Time
	Lang      string
	Duration  int
	Attempted int
	Correct   int
	Incorrect int
	Accuracy  int
}

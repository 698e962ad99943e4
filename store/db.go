package store

import (
	"io"

	"github.com/panasi/panasi/dialog"
	"github.com/panasi/panasi/timer"
)

// DB is the database storage interface.
type DB interface {
	// Save stores the timer snapshot and mirrors it to the status file
	Save(snap timer.Snapshot) error
	// Load returns the stored snapshot, or nil if there is none
	Load() (*timer.Snapshot, error)
	// SaveConversation stores the creation dialog in progress
	SaveConversation(c dialog.Conversation) error
	// LoadConversation returns the stored creation dialog
	LoadConversation() (dialog.Conversation, error)
	// Import replaces the stored timers with an exported snapshot
	Import(r io.Reader) (*timer.Snapshot, error)
	// Close ends the database connection
	Close() error
}

// Package store connects to the data store and manages the timer snapshot
// and the creation dialog
package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/panasi/panasi/dialog"
	"github.com/panasi/panasi/internal/apperr"
	"github.com/panasi/panasi/timer"
)

const (
	timerBucket  = "timers"
	dialogBucket = "dialog"
)

var (
	snapshotKey     = []byte("snapshot")
	conversationKey = []byte("current")
)

var (
	errPanasiRunning = &apperr.Error{
		Message: "is panasi already running? Only one instance can be active at a time",
	}

	errInvalidImport = &apperr.Error{
		Message: "the file is not a panasi export",
	}
)

var _ DB = (*Client)(nil)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	statusPath string
}

// Save stores the snapshot and mirrors it to the status file so that it can
// be read while the database is locked.
func (c *Client) Save(snap timer.Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	err = c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).Put(snapshotKey, value)
	})
	if err != nil {
		return err
	}

	return c.writeStatusFile(value)
}

func (c *Client) Load() (*timer.Snapshot, error) {
	var snap *timer.Snapshot

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(timerBucket)).Get(snapshotKey)
		if len(b) == 0 {
			return nil
		}

		snap = &timer.Snapshot{}

		return json.Unmarshal(b, snap)
	})

	return snap, err
}

func (c *Client) SaveConversation(conv dialog.Conversation) error {
	return c.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(dialogBucket))

		if !conv.Active() {
			return bucket.Delete(conversationKey)
		}

		value, err := json.Marshal(conv)
		if err != nil {
			return err
		}

		return bucket.Put(conversationKey, value)
	})
}

func (c *Client) LoadConversation() (dialog.Conversation, error) {
	var conv dialog.Conversation

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(dialogBucket)).Get(conversationKey)
		if len(b) == 0 {
			return nil
		}

		return json.Unmarshal(b, &conv)
	})

	return conv, err
}

// Import reads a snapshot exported by the browser version, or the raw
// snapshot JSON, validates it and replaces the stored timers with it.
func (c *Client) Import(r io.Reader) (*timer.Snapshot, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	b, err = unwrapExport(b)
	if err != nil {
		return nil, errInvalidImport.Wrap(err)
	}

	var snap timer.Snapshot

	if err = json.Unmarshal(migrateSnapshot(b), &snap); err != nil {
		return nil, errInvalidImport.Wrap(err)
	}

	reg, err := timer.Restore(snap)
	if err != nil {
		return nil, errInvalidImport.Wrap(err)
	}

	snap = reg.Snapshot(time.Now())

	return &snap, c.Save(snap)
}

func (c *Client) writeStatusFile(value []byte) (err error) {
	if c.statusPath == "" {
		return nil
	}

	statusFile, err := os.Create(c.statusPath)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(value)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, timeout time.Duration) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errPanasiRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. statusPath may be
// empty to disable the status file.
func NewClient(dbPath, statusPath string) (*Client, error) {
	db, err := openDB(dbPath, 1*time.Second)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{timerBucket, dialogBucket} {
			if _, err = tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		DB:         db,
		statusPath: statusPath,
	}, nil
}

// Peek returns the stored snapshot without keeping the database open. When
// another process holds the database, the status file it maintains is read
// instead. A nil snapshot means nothing has been saved.
func Peek(dbPath, statusPath string) (*timer.Snapshot, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	db, err := openDB(dbPath, 100*time.Millisecond)
	if err == nil {
		c := &Client{DB: db}
		defer c.Close()

		return c.peek()
	}

	if !errors.Is(err, errPanasiRunning) {
		return nil, err
	}

	b, err := os.ReadFile(statusPath)
	if err != nil {
		// missing file should not return an error
		return nil, nil
	}

	var snap timer.Snapshot

	if err = json.Unmarshal(b, &snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

// peek is Load for a database that may predate the current buckets.
func (c *Client) peek() (*timer.Snapshot, error) {
	var snap *timer.Snapshot

	err := c.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(timerBucket))
		if bucket == nil {
			return nil
		}

		b := bucket.Get(snapshotKey)
		if len(b) == 0 {
			return nil
		}

		snap = &timer.Snapshot{}

		return json.Unmarshal(migrateSnapshot(b), snap)
	})

	return snap, err
}

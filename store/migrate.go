package store

import (
	"bytes"
	"encoding/json"

	"go.etcd.io/bbolt"
)

// exportKey is the localStorage key the browser version saved its timers
// under.
const exportKey = "panasi-data"

var (
	legacyCounterKey = []byte(`"timerIdCounter"`)
	nextIDKey        = []byte(`"nextId"`)
)

// migrateSnapshot renames the ID counter of the browser format.
func migrateSnapshot(v []byte) []byte {
	if !bytes.Contains(v, legacyCounterKey) || bytes.Contains(v, nextIDKey) {
		return v
	}

	return bytes.Replace(v, legacyCounterKey, nextIDKey, 1)
}

// unwrapExport accepts a localStorage dump, where the snapshot is a JSON
// string stored under exportKey, as well as a bare snapshot.
func unwrapExport(b []byte) ([]byte, error) {
	var dump map[string]json.RawMessage

	if err := json.Unmarshal(b, &dump); err != nil {
		return nil, err
	}

	raw, ok := dump[exportKey]
	if !ok {
		return b, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []byte(s), nil
	}

	return raw, nil
}

func migrateTimers(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(timerBucket))

	v := bucket.Get(snapshotKey)
	if v == nil {
		return nil
	}

	migrated := migrateSnapshot(v)
	if bytes.Equal(migrated, v) {
		return nil
	}

	return bucket.Put(snapshotKey, migrated)
}

func migrate(tx *bbolt.Tx) error {
	return migrateTimers(tx)
}

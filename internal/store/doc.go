// Package store provides a process-local key/value store persisted to a
// single file.
//
// Values are encoded with a codec (JSON by default), optionally encrypted,
// and kept as text in memory. Nothing touches the disk until Persist, or
// Close when Config.AutoSave is set; Load replaces memory with the file's
// content. Clear and Destroy are deliberately orthogonal: Clear empties
// memory only, Destroy deletes the file only.
//
// Typical use:
//
//	cfg := store.DefaultConfig()
//	s, err := store.New(&cfg, "")
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	_ = s.Store("greeting", "hello")
//	msg, err := store.Get[string](s, "greeting")
//
// Persist serialises concurrent calls on one Store. There is no locking
// between processes: two stores on the same file see whatever the last
// completed Persist left behind.
package store

package store

import (
	"bytes"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"

	"cactus/internal/codec"
	"cactus/internal/crypto"
)

// Store is an in-memory map of keys to encoded values, flushed to a single
// file on Persist (or on Close when AutoSave is set).
//
// Store, Get, Exists, Keys, Query, Clear and Delete touch only memory and are
// not synchronised; callers sharing a Store across goroutines must serialise
// them. Persist is safe to call concurrently with itself.
type Store struct {
	cfg    Config
	key    string // encryption key, never persisted
	path   string
	codec  codec.Codec
	cipher Cipher
	fs     FileSystem
	log    *zap.Logger

	entries map[string]string

	writeMu   sync.Mutex // guards the file write in Persist
	closeOnce sync.Once
}

// New builds a Store from cfg. encryptionKey is required when
// cfg.EnableEncryption is set and ignored otherwise. With cfg.AutoLoad the
// file is loaded before New returns; a file that exists but does not parse
// fails construction with ErrDeserialization.
func New(cfg *Config, encryptionKey string, opts ...Option) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.EnableEncryption && encryptionKey == "" {
		return nil, fmt.Errorf("%w: encryption is enabled but no encryption key was given", ErrConfiguration)
	}

	s := &Store{
		cfg:     *cfg,
		entries: make(map[string]string),
	}
	if cfg.EnableEncryption {
		s.key = encryptionKey
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.codec == nil {
		s.codec = codec.JSON
	}
	if s.cipher == nil {
		s.cipher = crypto.NewPBKDF2Cipher()
	}
	if s.fs == nil {
		s.fs = OSFileSystem{BaseDir: cfg.BaseDir}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	path, err := s.fs.Resolve(cfg.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %q: %w", ErrIO, cfg.Filename, err)
	}
	s.path = path
	s.log = s.log.With(zap.String("path", path))

	s.log.Debug("store opened",
		zap.String("codec", s.codec.Name()),
		zap.Bool("encrypted", cfg.EnableEncryption),
		zap.Bool("auto_load", cfg.AutoLoad),
		zap.Bool("auto_save", cfg.AutoSave),
	)

	if cfg.AutoLoad {
		if err := s.Load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the resolved location of the backing file.
func (s *Store) Path() string { return s.path }

// Count returns the number of entries in memory.
func (s *Store) Count() int { return len(s.entries) }

// Store encodes value and saves it under key, replacing any previous value.
// Nothing is written to disk.
func (s *Store) Store(key string, value any) error {
	if key == "" {
		return fmt.Errorf("%w: key is empty", ErrArgument)
	}
	if isNil(value) {
		return fmt.Errorf("%w: value for key %q is nil", ErrArgument, key)
	}

	b, err := s.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding %T for key %q: %w", ErrArgument, value, key, err)
	}
	raw := string(b)

	if s.cfg.EnableEncryption {
		raw, err = s.cipher.Encrypt(s.key, s.cfg.EncryptionSalt, raw)
		if err != nil {
			return fmt.Errorf("encrypting key %q: %w", key, err)
		}
	}

	s.entries[key] = raw
	return nil
}

// Get returns the value under key decoded into the codec's dynamic
// representation (for JSON: string, float64, bool, []any, map[string]any).
func (s *Store) Get(key string) (any, error) {
	return Get[any](s, key)
}

// Get returns the value under key decoded into a T.
func Get[T any](s *Store, key string) (T, error) {
	var out T

	raw, err := s.plaintext(key)
	if err != nil {
		return out, err
	}
	if err := s.codec.Unmarshal([]byte(raw), &out); err != nil {
		return out, fmt.Errorf("%w: key %q as %v: %w", ErrDeserialization, key, reflect.TypeFor[T](), err)
	}
	return out, nil
}

// plaintext returns the encoded value for key, decrypted when needed.
func (s *Store) plaintext(key string) (string, error) {
	raw, ok := s.entries[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if !s.cfg.EnableEncryption {
		return raw, nil
	}
	pt, err := s.cipher.Decrypt(s.key, s.cfg.EncryptionSalt, raw)
	if err != nil {
		return "", fmt.Errorf("%w: decrypting key %q: %w", ErrDeserialization, key, err)
	}
	return pt, nil
}

// Exists reports whether key is present in memory.
func (s *Store) Exists(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Keys returns every key in memory in ascending order. An empty store yields
// an empty, non-nil slice.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Delete removes key from memory and reports whether it was present.
func (s *Store) Delete(key string) bool {
	_, ok := s.entries[key]
	delete(s.entries, key)
	return ok
}

// Clear empties memory. The file on disk is left alone; see Destroy.
func (s *Store) Clear() {
	clear(s.entries)
}

// Load replaces memory with the content of the backing file. A missing or
// empty file leaves memory untouched.
func (s *Store) Load() error {
	ok, err := s.fs.Exists(s.path)
	if err != nil {
		return fmt.Errorf("%w: stat: %w", ErrIO, err)
	}
	if !ok {
		s.log.Debug("load skipped, no file")
		return nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: read: %w", ErrIO, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.log.Debug("load skipped, empty file")
		return nil
	}

	var doc map[string]string
	if err := s.codec.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrDeserialization, s.path, err)
	}
	if doc == nil {
		doc = make(map[string]string)
	}
	s.entries = doc

	s.log.Debug("loaded", zap.Int("entries", len(doc)))
	return nil
}

// Persist writes every entry to the backing file, replacing its content.
func (s *Store) Persist() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, err := s.marshalDocument()
	if err != nil {
		return fmt.Errorf("%w: encoding document: %w", ErrIO, err)
	}
	if err := s.fs.WriteFile(s.path, data); err != nil {
		return fmt.Errorf("%w: write: %w", ErrIO, err)
	}

	s.log.Debug("persisted", zap.Int("entries", len(s.entries)), zap.Int("bytes", len(data)))
	return nil
}

func (s *Store) marshalDocument() ([]byte, error) {
	if ind, ok := s.codec.(interface {
		MarshalIndent(v any) ([]byte, error)
	}); ok {
		return ind.MarshalIndent(s.entries)
	}
	return s.codec.Marshal(s.entries)
}

// Destroy deletes the backing file if present. Memory is left alone; see Clear.
func (s *Store) Destroy() error {
	if err := s.fs.Remove(s.path); err != nil {
		return fmt.Errorf("%w: remove: %w", ErrIO, err)
	}
	s.log.Debug("destroyed")
	return nil
}

// Close releases the store, persisting it first when AutoSave is set. Only
// the first call has any effect; later calls return nil.
func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.cfg.AutoSave {
			err = s.Persist()
		}
	})
	return err
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

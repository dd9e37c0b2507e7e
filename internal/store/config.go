package store

import "fmt"

// DefaultName is used both as the default filename and the default salt.
const DefaultName = ".cactus"

// Config controls how a Store loads, saves and protects its file.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	AutoLoad         bool   `yaml:"auto_load"`         // load from disk in New
	AutoSave         bool   `yaml:"auto_save"`         // persist on Close
	EnableEncryption bool   `yaml:"enable_encryption"` // encrypt values before they are stored
	EncryptionSalt   string `yaml:"encryption_salt"`
	Filename         string `yaml:"filename"`

	// BaseDir is the directory Filename is resolved against. Empty means the
	// directory holding the running executable.
	BaseDir string `yaml:"base_dir"`
}

// DefaultConfig returns the default configuration: auto load and save on,
// encryption off, file and salt both named ".cactus".
func DefaultConfig() Config {
	return Config{
		AutoLoad:       true,
		AutoSave:       true,
		EncryptionSalt: DefaultName,
		Filename:       DefaultName,
	}
}

// Validate reports whether c can back a Store.
func (c Config) Validate() error {
	if c.Filename == "" {
		return fmt.Errorf("%w: filename is empty", ErrConfiguration)
	}
	return nil
}

package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cactus/internal/codec"
	"cactus/internal/crypto"
	"cactus/internal/store"
)

// Open builds a Store from cfg. log may be nil.
func Open(cfg Config, log *zap.Logger) (*store.Store, error) {
	c, err := codec.ByName(cfg.Codec)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return store.New(&cfg.Store, cfg.Key,
		store.WithCodec(c),
		store.WithCipher(crypto.NewPBKDF2Cipher()),
		store.WithFileSystem(store.OSFileSystem{BaseDir: cfg.Store.BaseDir}),
		store.WithLogger(log.Named("store")),
	)
}

// NewLogger builds the CLI logger: production JSON output on stderr, at
// debug level when verbose.
func NewLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

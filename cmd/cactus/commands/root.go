package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"cactus/internal/app"
	"cactus/internal/store"
)

// runtime is the state shared by every subcommand of one invocation.
type runtime struct {
	configPath string
	dir        string
	file       string
	salt       string
	key        string
	codec      string
	encrypt    bool
	verbose    bool

	cfg    app.Config
	log    *zap.Logger
	prompt io.Writer
}

// storeMode says how a subcommand uses the store.
type storeMode uint8

const (
	modeSave   storeMode = 1 << iota // persist on close
	modeValues                       // encodes or decodes values, so needs the key
	modeNoLoad                       // skip reading the file
)

// Execute runs the CLI against os.Args.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "cactus",
		Short: "File-backed key/value store",
		Long: `cactus keeps key/value pairs in a single file. Values are JSON
(or YAML) encoded and can be encrypted with a passphrase.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.log != nil {
				_ = rt.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rt.configPath, "config", "cactus.yaml", "YAML config file (ignored if missing)")
	pf.StringVar(&rt.dir, "dir", "", "directory holding the store file (default: executable dir)")
	pf.StringVar(&rt.file, "file", store.DefaultName, "store filename")
	pf.BoolVar(&rt.encrypt, "encrypt", false, "encrypt values")
	pf.StringVar(&rt.salt, "salt", store.DefaultName, "encryption salt")
	pf.StringVarP(&rt.key, "key", "k", "", "encryption key (prompted when --encrypt is set and stdin is a terminal)")
	pf.StringVar(&rt.codec, "codec", "json", "value codec: json or yaml")
	pf.BoolVarP(&rt.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		setCmd(rt),
		getCmd(rt),
		existsCmd(rt),
		keysCmd(rt),
		countCmd(rt),
		deleteCmd(rt),
		queryCmd(rt),
		clearCmd(rt),
		destroyCmd(rt),
	)
	return root
}

// init resolves configuration: file, then environment, then explicit flags.
func (rt *runtime) init(cmd *cobra.Command) error {
	cfg, err := app.LoadConfig(rt.configPath)
	if err != nil {
		return err
	}
	app.ApplyEnvOverrides(&cfg)

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Store.BaseDir = rt.dir
	}
	if flags.Changed("file") {
		cfg.Store.Filename = rt.file
	}
	if flags.Changed("encrypt") {
		cfg.Store.EnableEncryption = rt.encrypt
	}
	if flags.Changed("salt") {
		cfg.Store.EncryptionSalt = rt.salt
	}
	if flags.Changed("key") {
		cfg.Key = rt.key
	}
	if flags.Changed("codec") {
		cfg.Codec = rt.codec
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rt.verbose
	}

	log, err := app.NewLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	rt.cfg = cfg
	rt.log = log
	rt.prompt = cmd.ErrOrStderr()
	return nil
}

// promptKey reads the encryption key from the terminal without echo.
func promptKey(w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("encryption key required: use --key or " + app.EnvKey)
	}
	fmt.Fprint(w, "Encryption key: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return string(b), nil
}

// withStore opens the store according to mode, runs fn and closes it.
// Without modeSave the store never writes on close. Entries stay sealed in
// memory, so commands without modeValues run with encryption off and never
// need the key.
func (rt *runtime) withStore(mode storeMode, fn func(*store.Store) error) (err error) {
	cfg := rt.cfg
	cfg.Store.AutoLoad = mode&modeNoLoad == 0
	cfg.Store.AutoSave = mode&modeSave != 0

	if mode&modeValues == 0 {
		cfg.Store.EnableEncryption = false
		cfg.Key = ""
	} else if cfg.Store.EnableEncryption && cfg.Key == "" {
		key, err := promptKey(rt.prompt)
		if err != nil {
			return err
		}
		cfg.Key = key
	}

	s, err := app.Open(cfg, rt.log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

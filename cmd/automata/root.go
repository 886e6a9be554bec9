package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "automata",
		Short: "Automata is a finite automata engine",
		Long: `Automata simulates NFAs with epsilon moves, converts them to DFAs by subset
construction and builds them from regular expressions with Thompson's construction.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	flags.String("dir", "", "Directory holding definition files (file store)")
	flags.String("store", "", "Definition store: memory, file or redis")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Bool("lenient", false, "Ignore transitions on symbols outside the alphabet instead of failing")
	flags.Bool("fusion", false, "Concatenate Thompson fragments by state fusion instead of epsilon links")

	rootCmd.AddCommand(
		newRunCmd(),
		newDFACmd(),
		newGraphCmd(),
		newCompileCmd(),
		newValidateCmd(),
		newListCmd(),
		newImportCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies explicit flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("dir") {
		cfg.Store.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("store") {
		cfg.Store.Driver, _ = flags.GetString("store")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("lenient") {
		cfg.LenientAlphabet, _ = flags.GetBool("lenient")
	}
	if flags.Changed("fusion") {
		cfg.Fusion, _ = flags.GetBool("fusion")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newStore(c config.StoreConfig) (ports.DefinitionStore, func() error, error) {
	noop := func() error { return nil }
	switch c.Driver {
	case config.DriverMemory:
		return memory.NewStore(), noop, nil
	case config.DriverFile:
		return file.New(c.Dir, file.WithFormat(file.Format(c.Format))), noop, nil
	case config.DriverRedis:
		ttl, err := c.TTLDuration()
		if err != nil {
			return nil, nil, err
		}
		s := redis.New(c.RedisAddr, c.RedisPassword, c.RedisDB, redis.WithTTL(ttl), redis.WithPrefix(c.Prefix))
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", c.Driver)
	}
}

// newEngine wires the store, logger and policies selected by cfg.
// The returned func releases the store.
func newEngine(cmd *cobra.Command, cfg *config.Config, extra ...automata.Option) (*automata.Engine, func() error, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	store, closeStore, err := newStore(cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	opts := []automata.Option{
		automata.WithStore(store),
		automata.WithLogger(logging.NewWithWriter(cmd.ErrOrStderr(), level, cfg.LogJSON)),
	}
	if cfg.LenientAlphabet {
		opts = append(opts, automata.WithLenientAlphabet())
	}
	if cfg.Fusion {
		opts = append(opts, automata.WithFusion())
	}

	eng, err := automata.New(append(opts, extra...)...)
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	return eng, closeStore, nil
}

// setup is the common prologue of the commands that need an engine.
func setup(cmd *cobra.Command) (*automata.Engine, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return newEngine(cmd, cfg)
}

// resolveDefinition reads the definition from --file when given, otherwise from
// the store under the first positional argument. The remaining arguments are returned.
func resolveDefinition(cmd *cobra.Command, eng *automata.Engine, args []string) (*domain.Definition, []string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		def, err := file.LoadFile(path)
		return def, args, err
	}
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("a definition name or --file is required")
	}
	def, err := eng.Definition(cmd.Context(), args[0])
	return def, args[1:], err
}

func addFileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read the definition from a YAML or JSON file instead of the store")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// profileFor picks the colour profile for w. Pipes and files get plain ASCII.
func profileFor(w io.Writer) termenv.Profile {
	if isTerminal(w) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

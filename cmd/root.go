package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gnoswap-labs/guardorder/internal/term"
	"github.com/gnoswap-labs/guardorder/prover"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile  string
	specFile string
	strategy string
	full     bool
	reverse  bool
	verbose  bool
	timeout  time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "guardorder",
	Short: "guardorder - normalize terms and order guards of an equational specification",
	Long: `guardorder loads an equational data specification, rewrites terms to
normal form with a selectable strategy and orders terms and guards the way a
BDD-based prover does before case splitting.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", prover.DefaultConfigPath, "Path to the configuration file")
	flags.StringVar(&specFile, "spec", "", "Path to the YAML equational specification")
	flags.StringVar(&strategy, "strategy", "", "Rewrite strategy (overrides the configuration file)")
	flags.BoolVar(&full, "full", false, "Compare the arguments of equality guards")
	flags.BoolVar(&reverse, "reverse", false, "Compare the second arguments of equality guards first")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.DurationVar(&timeout, "timeout", defaultTimeout, "Time limit for a whole batch of terms, checked before each term")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(lpoCmd)
	rootCmd.AddCommand(orderCmd)
}

// loadConfig reads the configuration file and applies the flags set on
// the command line. A missing file at the default path is not an error.
func loadConfig(cmd *cobra.Command) (prover.Config, error) {
	config := prover.DefaultConfig()
	if cfgFile != "" {
		loaded, err := prover.LoadConfig(cfgFile)
		switch {
		case err == nil:
			config = loaded
		case os.IsNotExist(err) && !cmd.Flags().Changed("config"):
			logger.Debug("no configuration file, using defaults", zap.String("path", cfgFile))
		default:
			return config, err
		}
	}

	if cmd.Flags().Changed("strategy") {
		config.Strategy = strategy
	}
	if cmd.Flags().Changed("full") {
		config.Full = full
	}
	if cmd.Flags().Changed("reverse") {
		config.Reverse = reverse
	}
	return config, config.Validate()
}

func openSession(cmd *cobra.Command) (prover.Session, *term.Specification, error) {
	if specFile == "" {
		return nil, nil, fmt.Errorf("no specification given, use --spec")
	}
	config, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	spec, err := prover.LoadSpecification(specFile)
	if err != nil {
		return nil, nil, err
	}
	session, err := prover.New(spec, config, logger)
	if err != nil {
		return nil, nil, err
	}
	return session, spec, nil
}

func parseTerms(spec *term.Specification, srcs []string) ([]*term.Term, error) {
	out := make([]*term.Term, len(srcs))
	for i, src := range srcs {
		t, err := spec.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", src, err)
		}
		out[i] = t
	}
	return out, nil
}

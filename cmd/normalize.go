package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/guardorder/prover"
)

var (
	substitutions []string
	termsFile     string
	watchMode     bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [terms...]",
	Short: "Rewrite terms to normal form",
	Long: `Rewrites each term to normal form under the equations of the specification.
Example) guardorder normalize --spec nat.yaml --subst "n=succ(zero)" "plus(n, n)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		once := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return runNormalize(ctx, cmd, args)
		}
		if !watchMode {
			return once()
		}

		if err := once(); err != nil {
			logger.Error("Error normalizing terms", zap.Error(err))
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		paths := []string{specFile}
		if termsFile != "" {
			paths = append(paths, termsFile)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "watching %s, press Ctrl+C to stop\n", strings.Join(paths, ", "))
		return watchFiles(ctx, paths, once)
	},
}

func init() {
	normalizeCmd.Flags().StringArrayVar(&substitutions, "subst", nil, "Variable assignment name=term, may be repeated")
	normalizeCmd.Flags().StringVarP(&termsFile, "file", "f", "", "File with one term per line")
	normalizeCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Normalize again whenever the specification or terms file changes")
}

func runNormalize(ctx context.Context, cmd *cobra.Command, args []string) error {
	session, spec, err := openSession(cmd)
	if err != nil {
		return err
	}

	assignments := make([]prover.Assignment, len(substitutions))
	for i, s := range substitutions {
		a, err := prover.ParseAssignment(spec, s)
		if err != nil {
			return err
		}
		assignments[i] = a
	}

	srcs := args
	if termsFile != "" {
		lines, err := readTermsFile(termsFile)
		if err != nil {
			return err
		}
		srcs = append(srcs, lines...)
	}
	if len(srcs) == 0 {
		return fmt.Errorf("no terms given")
	}
	terms, err := parseTerms(spec, srcs)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if termsFile != "" {
		bar = newProgressBar(cmd.ErrOrStderr(), len(terms), termsFile)
	}

	results := make([]string, 0, len(terms))
	for _, t := range terms {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		nf := session.Normalize(t, assignments...)
		logger.Debug("normalized", zap.Stringer("term", t), zap.Stringer("normal_form", nf))
		results = append(results, nf.String())
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	return nil
}

func newProgressBar(w io.Writer, n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// readTermsFile returns the non-empty lines of path that are not comments
// starting with '#'.
func readTermsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

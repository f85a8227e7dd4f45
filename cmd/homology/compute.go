// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/homology/cells"
	"github.com/katalvlaran/homology/homology"
	"github.com/katalvlaran/homology/msh"
)

type computeFlags struct {
	files  []string
	dual   bool
	chains bool
	msh    string
}

// result is everything printed for one input file.
type result struct {
	file   string
	cx     *cells.Complex
	groups []homology.GroupSummary
	chains []*homology.Chain
}

func newComputeCmd(a *app) *cobra.Command {
	f := &computeFlags{}
	cmd := &cobra.Command{
		Use:   "compute -f complex.yaml [-f other.yaml ...]",
		Short: "Compute homology groups of one or more complexes",
		Long: `Reads each complex, computes its homology groups and prints them in the
order the files were given. Files are processed concurrently; each complex is
independent.

Example:
  homology compute -f rp2.yaml --chains
  homology compute -f torus.yaml --dual --msh chains.msh`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.Context(), a.logger, f, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVarP(&f.files, "file", "f", nil, "complex YAML file (repeatable)")
	cmd.Flags().BoolVar(&f.dual, "dual", false, "compute cohomology generators")
	cmd.Flags().BoolVar(&f.chains, "chains", false, "print generator chains")
	cmd.Flags().StringVar(&f.msh, "msh", "", "append generator chains as $ElementData to this .msh file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runCompute(ctx context.Context, logger *zap.Logger, f *computeFlags, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]result, len(f.files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range f.files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := computeFile(logger.With(zap.String("file", file)), file, f.dual, f.chains || f.msh != "")
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		printResult(out, r, f.chains)
		if f.msh == "" {
			continue
		}
		if err := msh.AppendChains(f.msh, r.cx, r.chains); err != nil {
			return fmt.Errorf("%s: %w", r.file, err)
		}
		logger.Info("chains written", zap.String("file", r.file), zap.String("msh", f.msh), zap.Int("chains", len(r.chains)))
	}

	return nil
}

func computeFile(logger *zap.Logger, file string, dual, withChains bool) (result, error) {
	fh, err := os.Open(file)
	if err != nil {
		return result{}, err
	}
	defer fh.Close()

	cx, err := cells.Decode(fh)
	if err != nil {
		return result{}, err
	}
	cc, err := homology.New(cx, homology.WithLogger(logger))
	if err != nil {
		return result{}, err
	}
	if err = cc.ComputeHomology(dual); err != nil {
		return result{}, err
	}

	r := result{file: file, cx: cx, groups: cc.Summary()}
	if withChains {
		for d := 0; d <= cells.MaxDim; d++ {
			chs, err := cc.Chains(d)
			if err != nil {
				return result{}, err
			}
			r.chains = append(r.chains, chs...)
		}
	}

	return r, nil
}

func printResult(w io.Writer, r result, withChains bool) {
	fmt.Fprintf(w, "%s:\n", r.file)
	for _, g := range r.groups {
		fmt.Fprintf(w, "  %s\n", g)
	}
	if !withChains {
		return
	}
	for _, ch := range r.chains {
		fmt.Fprintf(w, "  %s (order %s): %s\n", ch.Name, ch.Torsion, formatTerms(ch))
	}
}

// formatTerms renders a chain as "2*[4] - [7] + [9]" using cell tags.
func formatTerms(ch *homology.Chain) string {
	var b strings.Builder
	for i, t := range ch.Terms {
		c := t.Coefficient
		switch {
		case i == 0 && c.Sign() < 0:
			b.WriteString("-")
		case i > 0 && c.Sign() < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		abs := strings.TrimPrefix(c.String(), "-")
		if abs != "1" {
			b.WriteString(abs + "*")
		}
		fmt.Fprintf(&b, "[%d]", t.Tag)
	}

	return b.String()
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/homology/builder"
	"github.com/katalvlaran/homology/cells"
)

type fixtureFlags struct {
	n, m      int
	k         int
	subdomain []int
	offset    int
}

// fixtures maps a name to its constructor given the size flags.
var fixtures = map[string]func(f *fixtureFlags) builder.Constructor{
	"triangle": func(f *fixtureFlags) builder.Constructor { return builder.Polygon(f.n) },
	"tetra":    func(*fixtureFlags) builder.Constructor { return builder.SimplexBoundary(3) },
	"simplex":  func(f *fixtureFlags) builder.Constructor { return builder.Simplex(f.k) },
	"sphere":   func(f *fixtureFlags) builder.Constructor { return builder.SimplexBoundary(f.k) },
	"rp2":      func(*fixtureFlags) builder.Constructor { return builder.ProjectivePlane() },
	"torus":    func(f *fixtureFlags) builder.Constructor { return builder.Torus(f.n, f.m) },
	"klein":    func(f *fixtureFlags) builder.Constructor { return builder.KleinBottle(f.n, f.m) },
}

func fixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func newFixtureCmd(a *app) *cobra.Command {
	f := &fixtureFlags{}
	cmd := &cobra.Command{
		Use:       "fixture <name>",
		Short:     "Print a built-in complex as YAML",
		Long:      "Builds a simplicial complex and prints it as a YAML document for compute.\nNames: " + strings.Join(fixtureNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: fixtureNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := fixtures[args[0]]
			if !ok {
				return fmt.Errorf("unknown fixture %q (want one of %s)", args[0], strings.Join(fixtureNames(), ", "))
			}
			if f.offset < 0 {
				return fmt.Errorf("--tag-offset must be non-negative, got %d", f.offset)
			}
			opts := []builder.BuilderOption{builder.WithSubdomain(f.subdomain...)}
			if f.offset > 0 {
				opts = append(opts, builder.WithTagOffset(f.offset))
			}
			cx, err := builder.BuildComplex(opts, mk(f))
			if err != nil {
				return err
			}
			a.logger.Debug("fixture built", zap.String("name", args[0]),
				zap.Int("vertices", cx.Len(0)), zap.Int("edges", cx.Len(1)), zap.Int("faces", cx.Len(2)))

			return cells.Encode(cmd.OutOrStdout(), cx)
		},
	}
	cmd.Flags().IntVar(&f.n, "n", 3, "polygon size / first grid side")
	cmd.Flags().IntVar(&f.m, "m", 3, "second grid side")
	cmd.Flags().IntVar(&f.k, "k", 3, "simplex dimension")
	cmd.Flags().IntSliceVar(&f.subdomain, "subdomain", nil, "vertex labels whose simplices are excluded")
	cmd.Flags().IntVar(&f.offset, "tag-offset", 0, "added to every generated tag")

	return cmd
}

// Copyright 2025 The go-uqfuns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// uqfun lists, inspects, and samples the UQ test-function catalog.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/uqlab/go-uqfuns/funcs"
	"github.com/uqlab/go-uqfuns/probinput"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "uqfun",
		Short:         "browse and sample analytical UQ test functions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newShowCmd(), newSampleCmd(), newTransformCmd(), newFamiliesCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the test-function catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIM\tTAGS\tDESCRIPTION")
			for _, name := range funcs.Names() {
				f, err := funcs.New(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
					f.Name, f.Dimension(), strings.Join(f.Tags, ","), f.Description)
			}
			return w.Flush()
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "print a test function's probabilistic input model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := funcs.New(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f)
			fmt.Fprint(cmd.OutOrStdout(), f.Input)
			return nil
		},
	}
}

func newSampleCmd() *cobra.Command {
	var (
		n    int
		seed uint64
		eval bool
	)
	cmd := &cobra.Command{
		Use:   "sample NAME",
		Short: "draw points from a test function's input model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := funcs.New(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				f.Input.ResetRNG(seed)
			}
			pts, err := f.Input.Sample(n)
			if err != nil {
				return err
			}
			return printPoints(cmd.OutOrStdout(), f, pts, eval)
		},
	}
	cmd.Flags().IntVarP(&n, "num", "n", 10, "number of points to draw")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "reset the model's generator to this seed first")
	cmd.Flags().BoolVar(&eval, "eval", false, "append the function value to each row")
	return cmd
}

func newTransformCmd() *cobra.Command {
	var (
		minVal float64
		maxVal float64
		eval   bool
	)
	cmd := &cobra.Command{
		Use:   "transform NAME",
		Short: "map whitespace-separated hypercube points from stdin into the native domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := funcs.New(args[0])
			if err != nil {
				return err
			}
			pts, err := readPoints(cmd.InOrStdin())
			if err != nil {
				return err
			}
			native, err := f.Input.Transform(pts, minVal, maxVal)
			if err != nil {
				return err
			}
			return printPoints(cmd.OutOrStdout(), f, native, eval)
		},
	}
	cmd.Flags().Float64Var(&minVal, "min", -1, "hypercube lower bound")
	cmd.Flags().Float64Var(&maxVal, "max", 1, "hypercube upper bound")
	cmd.Flags().BoolVar(&eval, "eval", false, "append the function value to each row")
	return cmd
}

func printPoints(w io.Writer, f *funcs.Func, pts [][]float64, eval bool) error {
	for _, pt := range pts {
		for j, v := range pt {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%.6g", v)
		}
		if eval {
			fmt.Fprintf(w, " -> %.6g", f.Eval(pt))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func readPoints(r io.Reader) ([][]float64, error) {
	var pts [][]float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		pt := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
			pt[i] = v
		}
		pts = append(pts, pt)
	}
	return pts, scanner.Err()
}

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "list the supported marginal distribution families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range probinput.Families() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

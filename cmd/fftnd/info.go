package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/astrojhgu/fftn/dft"
	"github.com/astrojhgu/fftn/internal/cpu"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print CPU features and the available transform backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			features := cpu.DetectFeatures()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "cpu\t%s\n", features)
			fmt.Fprintf(tw, "simd\t%v\n", cpu.HasSIMD(features))

			for _, b := range dft.Backends() {
				fmt.Fprintf(tw, "backend\t%s\t%s\n", b, backendSupport(b))
			}

			return tw.Flush()
		},
	}
}

// backendSupport lists the precisions b can plan for.
func backendSupport(b dft.Backend) string {
	var out string
	if _, err := dft.PlannerFor[complex64](b); err == nil {
		out = "complex64"
	}

	if _, err := dft.PlannerFor[complex128](b); err == nil {
		if out != "" {
			out += " "
		}
		out += "complex128"
	}

	if out == "" {
		return "unavailable"
	}

	return out
}

// Command fftnd runs N-dimensional FFTs over generated arrays.
//
// Usage:
//
//	fftnd forward   [flags]
//	fftnd roundtrip [flags]
//	fftnd info
//
// Examples:
//
//	fftnd forward --shape 4,8 --axes 0,1 --print
//	fftnd roundtrip --shape 60,45,14 --axes 2,0,1 --backend gonum
//	fftnd roundtrip --shape 256,256 --precision 64 --norm ortho -v 2
//	fftnd info
package main

import (
	goflag "flag"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		klog.ErrorS(err, "fftnd failed")
		klog.Flush()
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fftnd",
		Short:         "Run N-dimensional FFTs over generated arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.SetOut(out)
	cmd.AddCommand(
		newForwardCommand(),
		newRoundTripCommand(),
		newInfoCommand(),
	)

	return cmd
}

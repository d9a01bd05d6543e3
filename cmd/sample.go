package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	sampleStream     int   // 1-based stream number to draw from
	sampleCount      int64 // number of variates to print
	sampleAntithetic bool  // report 1-u instead of u
	sampleSubstreams int   // substream advances before drawing
)

// sampleCmd prints U(0,1) variates from a numbered stream
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw uniform variates from a numbered stream",
	Run: func(cmd *cobra.Command, args []string) {
		p := newProvider()
		s, err := p.RNStream(sampleStream)
		if err != nil {
			logrus.Fatalf("cannot obtain stream %d: %v", sampleStream, err)
		}
		s.SetAntitheticOption(sampleAntithetic)
		for i := 0; i < sampleSubstreams; i++ {
			s.AdvanceToNextSubstream()
		}

		logrus.Infof("drawing %d variates from stream %d (antithetic=%v, substream offset %d)",
			sampleCount, sampleStream, sampleAntithetic, sampleSubstreams)

		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		for i := int64(0); i < sampleCount; i++ {
			fmt.Fprintf(w, "%.17f\n", s.NextUniform())
		}
	},
}

func init() {
	sampleCmd.Flags().IntVar(&sampleStream, "stream", 1, "Stream number to draw from (1-based)")
	sampleCmd.Flags().Int64Var(&sampleCount, "count", 10, "Number of variates to draw")
	sampleCmd.Flags().BoolVar(&sampleAntithetic, "antithetic", false, "Report antithetic complements (1-u)")
	sampleCmd.Flags().IntVar(&sampleSubstreams, "substream", 0, "Advance this many substreams before drawing")

	rootCmd.AddCommand(sampleCmd)
}

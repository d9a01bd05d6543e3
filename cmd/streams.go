package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var streamsCount int // number of streams to materialize

// streamsCmd dumps the provider registry: stream numbers, start states
// and the factory seed
var streamsCmd = &cobra.Command{
	Use:   "streams",
	Short: "Show numbered stream start states and the factory seed",
	Run: func(cmd *cobra.Command, args []string) {
		p := newProvider()

		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		fmt.Fprintf(w, "initial seed: %s\n", p.GetCurrentSeed())
		for i := 0; i < streamsCount; i++ {
			s := p.NextRNStream()
			fmt.Fprintf(w, "stream %3d start: %s\n", p.GetStreamNumber(s), s.StreamStartState())
		}
		fmt.Fprintf(w, "next stream would start at: %s\n", p.GetCurrentSeed())
	},
}

func init() {
	streamsCmd.Flags().IntVar(&streamsCount, "count", 5, "Number of streams to create and list")

	rootCmd.AddCommand(streamsCmd)
}

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/cwbudde/algo-rgba/raster"
)

func printVariants(w io.Writer) {
	best := raster.Best().Name()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tLanes\tLevel\t")
	for _, k := range raster.Registered() {
		mark := ""
		if k.Name() == best {
			mark = "selected"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", k.Name(), k.Lanes(), k.Level(), mark)
	}
	tw.Flush()
}

// printResults writes one table row per result and marks the fastest
// variant of each kernel. The mark sits in the last column so colour
// escapes do not disturb the alignment.
func printResults(w io.Writer, results []result) {
	fastest := make(map[string]float64)
	for _, r := range results {
		fastest[r.kernel] = max(fastest[r.kernel], r.mpxPerSec)
	}

	mark := color.New(color.FgGreen, color.Bold)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Kernel\tVariant\tms/frame\tfps\tMpx/s\t")
	for _, r := range results {
		note := ""
		if r.mpxPerSec == fastest[r.kernel] && r.variant != "-" {
			note = mark.Sprint("fastest")
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.1f\t%.1f\t %s\n",
			r.kernel, r.variant, r.msPerFrame, r.fps, r.mpxPerSec, note)
	}
	tw.Flush()
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [kind]",
	Short: "Print the piece catalog",
	Long: `Prints every rotation state of each piece kind (or of one kind) as
ASCII art. Rotations are listed clockwise from the spawn state.

Examples:
  blockfall shapes
  blockfall shapes T`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShapes,
}

func runShapes(_ *cobra.Command, args []string) {
	kinds := engine.Kinds[:]
	if len(args) == 1 {
		k, err := engine.ParseKind(args[0])
		if err != nil {
			exitErr("%v", err)
		}
		kinds = []engine.Kind{k}
	}
	for _, k := range kinds {
		printShapes(os.Stdout, k)
	}
}

// printShapes draws the rotation states of k side by side, each in a box
// as large as the kind's widest and tallest state.
func printShapes(w io.Writer, k engine.Kind) {
	n := engine.RotationStates(k)
	fmt.Fprintf(w, "%v (%v, %d rotation states)\n", k, k.Color(), n)

	var boxW, boxH uint
	for r := range n {
		sw, sh := engine.Shape(k, r).Extent()
		boxW, boxH = max(boxW, sw), max(boxH, sh)
	}

	rows := make([]strings.Builder, boxH)
	for r := range n {
		grid := make([][]bool, boxH)
		for y := range grid {
			grid[y] = make([]bool, boxW)
		}
		for _, b := range engine.Shape(k, r) {
			grid[b.Y][b.X] = true
		}
		for y := range grid {
			if r > 0 {
				rows[y].WriteString("   ")
			}
			for x := range grid[y] {
				if grid[y][x] {
					rows[y].WriteString("[]")
				} else {
					rows[y].WriteString(" .")
				}
			}
		}
	}
	for i := range rows {
		fmt.Fprintln(w, strings.TrimRight(rows[i].String(), " "))
	}
	fmt.Fprintln(w)
}

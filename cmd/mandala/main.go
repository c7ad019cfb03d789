// Command mandala generates paint-by-numbers puzzles: procedural
// mandala presets or converted photos, exported as puzzle.json +
// region_ids.png.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

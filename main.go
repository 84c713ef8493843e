// main is the command-line entrypoint for botstats.
package main

import (
	"botstats/cmd"
	"botstats/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run botstats", err)
	}
}

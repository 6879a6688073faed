// Package main is the entry point for epishuffle.
package main

import (
	"github.com/epishuffle/epishuffle/cmd"
	"github.com/epishuffle/epishuffle/config"
	"github.com/epishuffle/epishuffle/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

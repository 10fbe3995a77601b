// Package main is the entry point for the framex application.
package main

import (
	"github.com/framex-cli/framex/cmd"
	"github.com/framex-cli/framex/config"
	"github.com/framex-cli/framex/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

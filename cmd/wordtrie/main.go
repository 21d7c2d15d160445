package main

import (
	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/wordtrie/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	ctx.FatalIfErrorf(ctx.Run(cli.NewContext()))
}

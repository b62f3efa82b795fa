package main

import (
	"log"
	"os"

	"golang.org/x/term"

	"github.com/trezcool/courseplan/apps/shared"
	"github.com/trezcool/courseplan/core"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "PLANCTL : ", log.LstdFlags)

	conf := core.NewConfig()
	validate, translator := shared.NewValidator()

	cli := commandLine{
		out:         os.Stdout,
		color:       term.IsTerminal(int(os.Stdout.Fd())),
		profilePath: conf.ProfilePath,
		validate:    validate,
		translator:  translator,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("error: %s\n", describeError(err))
		}
		os.Exit(1)
	}
}

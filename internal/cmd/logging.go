package cmd

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

func setupLogging(w io.Writer, level log.Level) {
	log.SetHandler(cli.New(w))
	log.SetLevel(level)
}

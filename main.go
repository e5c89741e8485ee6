package main

import (
	"os"

	"github.com/confstore/confstore/lib/util/logger"
)

var log = logger.GetLogger()

func main() {
	log.Debug("starting confstore cli")
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

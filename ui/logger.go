package ui

import (
	"io"

	"github.com/charmbracelet/log"
)

// InitLogger initializes and configures a Charm logger writing to w
func InitLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    verbose,
		ReportTimestamp: verbose,
		Prefix:          "bookfinder",
	})

	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	return logger
}

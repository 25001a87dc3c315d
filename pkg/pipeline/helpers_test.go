package pipeline

import (
	"io"

	"github.com/charmbracelet/log"
)

func discard() *log.Logger { return log.NewWithOptions(io.Discard, log.Options{}) }

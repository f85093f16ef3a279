package config

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger. An empty level keeps info.
func SetupLogging(w io.Writer, level string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return nil
}

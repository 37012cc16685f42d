package logging

import (
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger.
// debug enables debug level; format "json" switches to the JSON formatter.
func Setup(out io.Writer, debug bool, format string) {
	if out != nil {
		log.SetOutput(out)
	}
	log.SetLevel(log.InfoLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	if strings.EqualFold(format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

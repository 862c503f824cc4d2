package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger for the whole application. It is usable before
// Init runs so library code and tests can log without setup.
var Log = logrus.New()

// Init configures the global logger from the environment. It should be
// called once at startup in main.
//
// LOG_LEVEL selects the level (default "info"); LOG_FORMAT=json switches to
// the JSON formatter.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// For returns an entry tagged with the given component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

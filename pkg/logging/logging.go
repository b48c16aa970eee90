package logging

import (
	"bytes"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing human-readable lines to out.
// Verbosity 0 prints bare progress lines, 1 adds debug details with
// timestamps and fields, 2 and more add traces.
func NewLogger(out io.Writer, verbosity int) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(levelFor(verbosity))

	if verbosity <= 0 {
		logger.SetFormatter(&ProgressFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:          true,
			DisableLevelTruncation: true,
			PadLevelText:           true,
			DisableQuote:           true,
		})
	}

	return logger
}

func levelFor(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.InfoLevel
	case verbosity == 1:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// ProgressFormatter prints only the message, one per line. Warnings get a
// "WARNING: " prefix; fields are dropped.
type ProgressFormatter struct{}

func (f *ProgressFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = &bytes.Buffer{}
	}

	if entry.Level == logrus.WarnLevel {
		buf.WriteString("WARNING: ")
	}
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

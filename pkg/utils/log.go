package utils

import (
	"flag"
	"io"
	"os"

	filename "github.com/keepeye/logrus-filename"
	"github.com/selectdb/state_observer/pkg/xerror"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/t-tomalak/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logLevel        string
	logFilename     string
	logAlsoToStderr bool
)

func init() {
	flag.StringVar(&logLevel, "log_level", "info", "log level")
	flag.StringVar(&logFilename, "log_filename", "", "log filename")
	flag.BoolVar(&logAlsoToStderr, "log_also_to_stderr", false, "log also to stderr")
}

// InitLog configures the global logrus logger from the log_* flags. Without a
// log_filename the logs go to stderr, stdout is reserved for the subject transcript.
func InitLog() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return xerror.Wrapf(err, xerror.Config, "parse log level %s failed", logLevel)
	}
	log.SetLevel(level)
	log.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		ForceFormatting: true,
	})

	log.AddHook(NewHook())

	// log.SetReportCaller(true), caller by filename
	filenameHook := filename.NewHook()
	filenameHook.Field = "line"
	log.AddHook(filenameHook)

	log.SetOutput(logOutput())
	return nil
}

func logOutput() io.Writer {
	if logFilename == "" {
		return os.Stderr
	}

	output := &lumberjack.Logger{
		Filename:   logFilename,
		MaxSize:    64, // MB
		MaxAge:     7,
		MaxBackups: 10,
		LocalTime:  true,
		Compress:   false,
	}
	if logAlsoToStderr {
		return io.MultiWriter(output, os.Stderr)
	}
	return output
}

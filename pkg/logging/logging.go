package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// writerHook fans every entry out to several writers, so the log file and
// stdout can carry different levels.
type writerHook struct {
	Writer    []io.Writer
	LogLevels []logrus.Level
}

func (hook *writerHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	for _, w := range hook.Writer {
		_, _ = w.Write([]byte(line))
	}
	return err
}

func (hook *writerHook) Levels() []logrus.Level {
	return hook.LogLevels
}

type Logger struct {
	*logrus.Entry
}

var e *logrus.Entry
var once sync.Once

func GetLogger() *Logger {
	once.Do(func() {
		e = newEntry("", false)
	})
	return &Logger{e}
}

// Init replaces the process logger with one that also writes to dir/all.log.
// Until Init is called GetLogger writes to stdout only.
func Init(dir string, debug bool) {
	once.Do(func() {})
	e = newEntry(dir, debug)
}

func newEntry(dir string, debug bool) *logrus.Entry {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &logrus.TextFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			filename := path.Base(frame.File)
			return fmt.Sprintf("%s()", frame.Function), fmt.Sprintf("%s:%d", filename, frame.Line)
		},
		DisableColors: true,
		FullTimestamp: true,
	}

	writers := []io.Writer{os.Stdout}
	if dir != "" {
		if err := os.MkdirAll(dir, 0770); err != nil {
			fmt.Println(err)
		} else if allFile, err := os.OpenFile(path.Join(dir, "all.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640); err != nil {
			fmt.Println(err)
		} else {
			writers = append(writers, allFile)
		}
	}

	l.SetOutput(io.Discard)
	l.AddHook(&writerHook{
		Writer:    writers,
		LogLevels: logrus.AllLevels,
	})

	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}

	return logrus.NewEntry(l)
}

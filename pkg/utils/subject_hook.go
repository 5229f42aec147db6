package utils

import (
	"github.com/modern-go/gls"
	"github.com/sirupsen/logrus"
)

const SubjectField = "subject"

// Hook copies a goroutine-local value into every log entry fired on that goroutine.
type Hook struct {
	Field  string
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	if value := gls.Get(hook.Field); value != nil {
		entry.Data[hook.Field] = value
	}
	return nil
}

func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  SubjectField,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// LabelGoroutine sets the subject field for the calling goroutine. If the goroutine
// is already labeled, the returned func restores the previous label, otherwise it
// drops the goroutine-local storage. It must run on the same goroutine.
func LabelGoroutine(subject string) func() {
	if prev := gls.Get(SubjectField); prev != nil {
		gls.Set(SubjectField, subject)
		return func() {
			gls.Set(SubjectField, prev)
		}
	}

	goid := gls.GoID()
	gls.ResetGls(goid, map[interface{}]interface{}{})
	gls.Set(SubjectField, subject)

	return func() {
		gls.DeleteGls(goid)
	}
}

// Package logrus adapts a logrus entry to readthrough.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/readthrough"
)

var _ readthrough.Logger = LogrusLogger{}

// LogrusLogger logs through E, or the logrus standard logger when E is nil.
// An error stored under "err" is reported under logrus.ErrorKey.
type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f readthrough.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f readthrough.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f readthrough.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f readthrough.Fields) { l.with(f).Error(msg) }

func (l LogrusLogger) with(f readthrough.Fields) *logrus.Entry {
	e := l.E
	if e == nil {
		e = logrus.NewEntry(logrus.StandardLogger())
	}
	if len(f) == 0 {
		return e
	}
	out := make(logrus.Fields, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok && k == "err" {
			out[logrus.ErrorKey] = err
			continue
		}
		out[k] = v
	}
	return e.WithFields(out)
}

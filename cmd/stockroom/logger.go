package main

import "github.com/sirupsen/logrus"

// logAdapter exposes a logrus entry through the minimal logging contract the
// auth and handler packages expect.
type logAdapter struct {
	entry *logrus.Entry
}

func newLogger(component string) logAdapter {
	return logAdapter{
		entry: logrus.WithField("component", component),
	}
}

func (l logAdapter) Debug(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l logAdapter) Info(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l logAdapter) Error(format string, args ...any) { l.entry.Errorf(format, args...) }

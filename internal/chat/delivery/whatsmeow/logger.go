package whatsmeow

import (
	"context"

	waLog "go.mau.fi/whatsmeow/util/log"

	"pneuma-faq-bot/pkg/log"
)

// logAdapter routes whatsmeow's internal logs through the service logger.
type logAdapter struct {
	l      log.Logger
	module string
}

func newLogAdapter(l log.Logger, module string) waLog.Logger {
	return &logAdapter{l: l, module: module}
}

func (a *logAdapter) Errorf(msg string, args ...interface{}) {
	a.l.Errorf(context.Background(), "whatsmeow/"+a.module+": "+msg, args...)
}

func (a *logAdapter) Warnf(msg string, args ...interface{}) {
	a.l.Warnf(context.Background(), "whatsmeow/"+a.module+": "+msg, args...)
}

func (a *logAdapter) Infof(msg string, args ...interface{}) {
	a.l.Infof(context.Background(), "whatsmeow/"+a.module+": "+msg, args...)
}

func (a *logAdapter) Debugf(msg string, args ...interface{}) {
	a.l.Debugf(context.Background(), "whatsmeow/"+a.module+": "+msg, args...)
}

func (a *logAdapter) Sub(module string) waLog.Logger {
	return &logAdapter{l: a.l, module: a.module + "/" + module}
}

package bootstrap

import "log"

type AuditLogger interface {
	Log(msg string)
}

type stdoutAuditLogger struct{}

func NewStdoutAuditLogger() AuditLogger {
	return &stdoutAuditLogger{}
}

func (l *stdoutAuditLogger) Log(msg string) {
	log.Printf("[AUDIT] %s", msg)
}

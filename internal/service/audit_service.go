package service

import (
	"context"
	"log"
	"sync"

	"savora.app/api/internal/model"
	"savora.app/api/internal/repository"
)

// AuditLogger appends request audit entries as a best-effort side
// channel. Record never blocks and never returns an error: a full
// buffer drops the event and persistence failures only reach the
// diagnostic log. The primary operation is never rolled back or
// delayed on behalf of auditing.
type AuditLogger interface {
	Record(message, level string)
	Close()
}

type auditLogger struct {
	repo   repository.LogRepository
	events chan model.LogEntry
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

const auditBufferSize = 256

func NewAuditLogger(repo repository.LogRepository) AuditLogger {
	l := &auditLogger{
		repo:   repo,
		events: make(chan model.LogEntry, auditBufferSize),
		done:   make(chan struct{}),
	}

	go l.run()
	return l
}

func (l *auditLogger) Record(message, level string) {
	entry := model.LogEntry{
		Message: message,
		Level:   level,
	}

	// The read lock holds off Close so the channel cannot be closed
	// between the flag check and the send.
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return
	}

	select {
	case l.events <- entry:
	default:
		log.Printf("audit buffer full, dropping entry: %s", message)
	}
}

// Close stops accepting events and drains everything already queued.
// Record calls arriving after Close drop their entry silently.
func (l *auditLogger) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.events)
	}
	l.mu.Unlock()
	<-l.done
}

func (l *auditLogger) run() {
	defer close(l.done)

	for entry := range l.events {
		e := entry
		if err := l.repo.Append(context.Background(), &e); err != nil {
			log.Printf("failed to append audit entry: %v", err)
		}
	}
}

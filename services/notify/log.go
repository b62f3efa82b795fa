package notifysvc

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core"
)

var ErrEntryNotFound = errors.New("notification not found")

var nowFunc = time.Now // mockable

type Entry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// Log is the persistent notification log: newest entries first.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
}

var _ core.Notifier = (*Log)(nil)

func NewLog() *Log {
	return &Log{}
}

// Toast is ignored: toasts are not logged.
func (l *Log) Toast(string) {}

func (l *Log) Notify(msg string) {
	entry := Entry{
		ID:        uuid.New().String(),
		Message:   msg,
		CreatedAt: nowFunc().UTC(),
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]Entry{entry}, l.entries...)
}

func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Entry(nil), l.entries...)
}

func (l *Log) Unread() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var n int
	for _, e := range l.entries {
		if !e.Read {
			n++
		}
	}
	return n
}

// MarkRead flags the entry as read. Marking it twice is not an error.
func (l *Log) MarkRead(id string) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Read = true
			return l.entries[i], nil
		}
	}
	return Entry{}, ErrEntryNotFound
}

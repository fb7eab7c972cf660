package session

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Context is the per-page view of the session keys.
type Context struct {
	store  Storage
	logger *zap.Logger
}

func NewContext(store Storage, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{store: store, logger: logger}
}

// LoggedIn reports whether the flag holds exactly "true".
func (s *Context) LoggedIn() bool {
	v, ok := s.store.Get(FlagKey)
	return ok && v == flagTrue
}

// RawRecord returns the serialized record. An empty value counts as absent.
func (s *Context) RawRecord() (string, bool) {
	v, ok := s.store.Get(RecordKey)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Load returns the record of a logged-in session. It fails with
// ErrNoSession when the flag or record is missing and with
// ErrMalformedRecord when the record cannot be decoded.
func (s *Context) Load() (*Record, error) {
	raw, ok := s.RawRecord()
	if !s.LoggedIn() || !ok {
		return nil, ErrNoSession
	}
	return ParseRecord(raw)
}

// CurrentUser is Load with failures logged and swallowed.
func (s *Context) CurrentUser() *Record {
	rec, err := s.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			s.logger.Warn("Failed to parse session record", zap.Error(err))
		}
		return nil
	}
	return rec
}

// Establish writes both keys for rec.
func (s *Context) Establish(rec Record) error {
	raw, err := rec.Encode()
	if err != nil {
		return err
	}
	s.store.Set(RecordKey, raw)
	s.store.Set(FlagKey, flagTrue)
	return nil
}

// Clear removes both session keys. The notice key is left alone.
func (s *Context) Clear() {
	s.store.Remove(FlagKey)
	s.store.Remove(RecordKey)
}

func (s *Context) SetNotice(msg string) {
	if msg == "" {
		return
	}
	s.store.Set(NoticeKey, msg)
}

// TakeNotice returns and consumes the pending notice.
func (s *Context) TakeNotice() (string, bool) {
	msg, ok := s.store.Get(NoticeKey)
	if !ok || msg == "" {
		return "", false
	}
	s.store.Remove(NoticeKey)
	return msg, true
}

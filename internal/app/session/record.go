package session

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Storage keys shared by every page. The external login flow writes the
// first two; the notice key carries a one-shot message across a redirect.
const (
	FlagKey   = "isLoggedIn"
	RecordKey = "user"
	NoticeKey = "notice"

	flagTrue = "true"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

var (
	ErrNoSession       = errors.New("no session")
	ErrMalformedRecord = errors.New("malformed session record")
)

// Record is the user data stored under RecordKey. Extra fields written by
// the login flow (id, email, created_at) are ignored.
type Record struct {
	Username string `json:"username" binding:"required,max=64"`
	Role     Role   `json:"role"`
	Status   Status `json:"status"`
}

func (r Record) IsAdmin() bool {
	return r.Role == RoleAdmin
}

func (r Record) IsActive() bool {
	return r.Status == StatusActive
}

// ParseRecord decodes the serialized record. Anything that is not a JSON
// object, including the literal null, is reported as ErrMalformedRecord.
// Fields of the wrong type do not fail the parse: they keep their JSON text
// and so never match a known role or status.
func ParseRecord(raw string) (*Record, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return nil, errors.Wrap(ErrMalformedRecord, "empty record")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return nil, errors.Wrap(ErrMalformedRecord, err.Error())
	}
	return &Record{
		Username: fieldText(fields["username"]),
		Role:     Role(fieldText(fields["role"])),
		Status:   Status(fieldText(fields["status"])),
	}, nil
}

// fieldText returns a JSON string's value, or the compact JSON text of any
// other value. Absent and null fields are empty.
func fieldText(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v)
	}
	if buf.String() == "null" {
		return ""
	}
	return buf.String()
}

// Encode serializes the record for storage under RecordKey.
func (r Record) Encode() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", errors.Wrap(err, "encode session record")
	}
	return string(b), nil
}

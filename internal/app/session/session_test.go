package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *Record
		wantErr bool
	}{
		{
			name: "full record",
			raw:  `{"username":"A","role":"user","status":"active"}`,
			want: &Record{Username: "A", Role: RoleUser, Status: StatusActive},
		},
		{
			name: "extra fields from the login flow are ignored",
			raw:  `{"id":7,"username":"B","email":"b@example.com","role":"admin","status":"active","created_at":"2024-01-01"}`,
			want: &Record{Username: "B", Role: RoleAdmin, Status: StatusActive},
		},
		{
			name: "status only",
			raw:  `{"status":"disabled"}`,
			want: &Record{Status: StatusDisabled},
		},
		{
			name: "numeric username keeps its text",
			raw:  `{"username":42,"role":"user","status":"active"}`,
			want: &Record{Username: "42", Role: RoleUser, Status: StatusActive},
		},
		{
			name: "numeric status never matches active",
			raw:  `{"username":"A","role":"user","status":5}`,
			want: &Record{Username: "A", Role: RoleUser, Status: "5"},
		},
		{
			name: "object role never matches admin",
			raw:  `{"username":"A","role":{"name": "admin"},"status":"active"}`,
			want: &Record{Username: "A", Role: `{"name":"admin"}`, Status: StatusActive},
		},
		{
			name: "null fields are empty",
			raw:  `{"username":null,"status":null}`,
			want: &Record{},
		},
		{name: "invalid json", raw: `{username:`, wantErr: true},
		{name: "json array", raw: `[{"status":"active"}]`, wantErr: true},
		{name: "json number", raw: `7`, wantErr: true},
		{name: "literal null", raw: `null`, wantErr: true},
		{name: "json string", raw: `"admin"`, wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedRecord))
				assert.Equal(t, ErrMalformedRecord, errors.Cause(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextLoad(t *testing.T) {
	t.Run("flag must be exactly true", func(t *testing.T) {
		store := NewMemoryStorage()
		store.Set(FlagKey, "TRUE")
		store.Set(RecordKey, `{"username":"A","status":"active"}`)

		_, err := NewContext(store, nil).Load()
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("empty record counts as absent", func(t *testing.T) {
		store := NewMemoryStorage()
		store.Set(FlagKey, "true")
		store.Set(RecordKey, "")

		sess := NewContext(store, nil)
		_, err := sess.Load()
		assert.ErrorIs(t, err, ErrNoSession)
		assert.Nil(t, sess.CurrentUser())
	})

	t.Run("malformed record", func(t *testing.T) {
		store := NewMemoryStorage()
		store.Set(FlagKey, "true")
		store.Set(RecordKey, "not json")

		sess := NewContext(store, nil)
		_, err := sess.Load()
		assert.ErrorIs(t, err, ErrMalformedRecord)
		assert.Nil(t, sess.CurrentUser())
	})

	t.Run("record without flag is not a session", func(t *testing.T) {
		store := NewMemoryStorage()
		store.Set(RecordKey, `{"username":"A","status":"active"}`)

		assert.Nil(t, NewContext(store, nil).CurrentUser())
	})
}

func TestContextEstablishAndClear(t *testing.T) {
	store := NewMemoryStorage()
	sess := NewContext(store, nil)

	require.NoError(t, sess.Establish(Record{Username: "A", Role: RoleUser, Status: StatusActive}))
	assert.True(t, sess.LoggedIn())

	user := sess.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "A", user.Username)
	assert.False(t, user.IsAdmin())
	assert.True(t, user.IsActive())

	sess.SetNotice("hello")
	sess.Clear()
	assert.False(t, sess.LoggedIn())
	_, ok := sess.RawRecord()
	assert.False(t, ok)

	msg, ok := sess.TakeNotice()
	assert.True(t, ok)
	assert.Equal(t, "hello", msg)
	_, ok = sess.TakeNotice()
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestCookieStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reads request cookies", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/chat", nil)
		c.Request.AddCookie(&http.Cookie{Name: FlagKey, Value: "true"})
		c.Request.AddCookie(&http.Cookie{Name: RecordKey, Value: url.QueryEscape(`{"username":"A","role":"user","status":"active"}`)})

		sess := NewContext(NewCookieStorage(c, CookieOptions{}), nil)
		user := sess.CurrentUser()
		require.NotNil(t, user)
		assert.Equal(t, "A", user.Username)
	})

	t.Run("writes are visible within the request and emitted as cookies", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/chat", nil)
		c.Request.AddCookie(&http.Cookie{Name: FlagKey, Value: "true"})

		store := NewCookieStorage(c, CookieOptions{MaxAge: 3600})
		store.Remove(FlagKey)
		store.Set(NoticeKey, "bye")

		_, ok := store.Get(FlagKey)
		assert.False(t, ok)
		v, ok := store.Get(NoticeKey)
		assert.True(t, ok)
		assert.Equal(t, "bye", v)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, FlagKey, cookies[0].Name)
		assert.Less(t, cookies[0].MaxAge, 0)
		assert.Equal(t, NoticeKey, cookies[1].Name)
		assert.Equal(t, "bye", cookies[1].Value)
		assert.False(t, cookies[1].HttpOnly)
		assert.Equal(t, "/", cookies[1].Path)
	})
}

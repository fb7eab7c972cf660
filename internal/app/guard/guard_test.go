package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/FACorreiaa/lovebell/internal/app/models"
	"github.com/FACorreiaa/lovebell/internal/app/session"
)

// MockStorage is a mock implementation of the session.Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Get(key string) (string, bool) {
	args := m.Called(key)
	return args.String(0), args.Bool(1)
}

func (m *MockStorage) Set(key, value string) {
	m.Called(key, value)
}

func (m *MockStorage) Remove(key string) {
	m.Called(key)
}

func seeded(flag, record *string) *session.MemoryStorage {
	store := session.NewMemoryStorage()
	if flag != nil {
		store.Set(session.FlagKey, *flag)
	}
	if record != nil {
		store.Set(session.RecordKey, *record)
	}
	return store
}

func ptr(s string) *string { return &s }

func TestIsAuthenticated(t *testing.T) {
	tests := []struct {
		name        string
		flag        *string
		record      *string
		want        Outcome
		wantCleared bool
	}{
		{
			name:   "active user passes",
			flag:   ptr("true"),
			record: ptr(`{"username":"A","role":"user","status":"active"}`),
			want:   Allow(),
		},
		{
			name: "no keys",
			want: RedirectTo(models.RouteLogin, ReasonNotLoggedIn),
		},
		{
			name:   "flag not exactly true",
			flag:   ptr("1"),
			record: ptr(`{"username":"A","status":"active"}`),
			want:   RedirectTo(models.RouteLogin, ReasonNotLoggedIn),
		},
		{
			name: "record absent",
			flag: ptr("true"),
			want: RedirectTo(models.RouteLogin, ReasonNotLoggedIn),
		},
		{
			name:        "disabled account",
			flag:        ptr("true"),
			record:      ptr(`{"status":"disabled"}`),
			want:        RedirectTo(models.RouteLogin, ReasonAccountDisabled).WithNotice(DefaultNotices.AccountDisabled),
			wantCleared: true,
		},
		{
			name:        "missing status is not active",
			flag:        ptr("true"),
			record:      ptr(`{"username":"A","role":"user"}`),
			want:        RedirectTo(models.RouteLogin, ReasonAccountDisabled).WithNotice(DefaultNotices.AccountDisabled),
			wantCleared: true,
		},
		{
			name:   "numeric username still passes",
			flag:   ptr("true"),
			record: ptr(`{"username":42,"role":"user","status":"active"}`),
			want:   Allow(),
		},
		{
			name:        "numeric status is a disabled account",
			flag:        ptr("true"),
			record:      ptr(`{"username":"A","role":"user","status":5}`),
			want:        RedirectTo(models.RouteLogin, ReasonAccountDisabled).WithNotice(DefaultNotices.AccountDisabled),
			wantCleared: true,
		},
		{
			name:        "boolean status is a disabled account",
			flag:        ptr("true"),
			record:      ptr(`{"username":"A","status":true}`),
			want:        RedirectTo(models.RouteLogin, ReasonAccountDisabled).WithNotice(DefaultNotices.AccountDisabled),
			wantCleared: true,
		},
		{
			name:        "json array is malformed",
			flag:        ptr("true"),
			record:      ptr(`[{"status":"active"}]`),
			want:        RedirectTo(models.RouteLogin, ReasonMalformedRecord),
			wantCleared: true,
		},
		{
			name:        "invalid serialized text",
			flag:        ptr("true"),
			record:      ptr(`{"username":`),
			want:        RedirectTo(models.RouteLogin, ReasonMalformedRecord),
			wantCleared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seeded(tt.flag, tt.record)
			g := New(session.NewContext(store, nil), Notices{}, nil)

			got := g.IsAuthenticated()
			assert.Equal(t, tt.want, got)

			if tt.wantCleared {
				assert.Equal(t, 0, store.Len())
			}
		})
	}
}

func TestIsAuthenticatedAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		store := seeded(ptr("true"), ptr(`{"username":"B","role":"admin","status":"active"}`))
		g := New(session.NewContext(store, nil), Notices{}, nil)

		assert.True(t, g.IsAuthenticatedAdmin().IsAllowed())
	})

	t.Run("logged out goes to login, not home", func(t *testing.T) {
		g := New(session.NewContext(session.NewMemoryStorage(), nil), Notices{}, nil)

		got := g.IsAuthenticatedAdmin()
		assert.Equal(t, Redirect, got.Decision)
		assert.Equal(t, models.RouteLogin, got.Destination)
	})

	t.Run("disabled admin is cleared", func(t *testing.T) {
		store := seeded(ptr("true"), ptr(`{"username":"B","role":"admin","status":"disabled"}`))
		g := New(session.NewContext(store, nil), Notices{}, nil)

		got := g.IsAuthenticatedAdmin()
		assert.Equal(t, ReasonAccountDisabled, got.Reason)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("non-string role is not admin", func(t *testing.T) {
		store := seeded(ptr("true"), ptr(`{"username":"A","role":["admin"],"status":"active"}`))
		g := New(session.NewContext(store, nil), Notices{}, nil)

		got := g.IsAuthenticatedAdmin()
		assert.Equal(t, RedirectTo(models.RouteHome, ReasonNotAdmin).WithNotice(DefaultNotices.AdminRequired), got)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("non-admin goes home and storage is untouched", func(t *testing.T) {
		store := new(MockStorage)
		store.On("Get", session.FlagKey).Return("true", true)
		store.On("Get", session.RecordKey).Return(`{"username":"A","role":"user","status":"active"}`, true)

		g := New(session.NewContext(store, nil), Notices{AdminRequired: "no admin"}, nil)
		got := g.IsAuthenticatedAdmin()

		assert.Equal(t, RedirectTo(models.RouteHome, ReasonNotAdmin).WithNotice("no admin"), got)
		store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "Remove", mock.Anything)
		store.AssertExpectations(t)
	})
}

func TestRequireLogin(t *testing.T) {
	store := seeded(ptr("true"), ptr("garbage"))
	g := New(session.NewContext(store, nil), Notices{}, nil)

	assert.True(t, g.RequireLogin().IsAllowed())
	assert.Equal(t, 2, store.Len())

	g = New(session.NewContext(seeded(ptr("false"), ptr("{}")), nil), Notices{}, nil)
	assert.Equal(t, models.RouteLogin, g.RequireLogin().Destination)
}

func TestEvaluate(t *testing.T) {
	assert.Equal(t, RequireAdmin, RequirementFromMarkers(true, true, true))
	assert.Equal(t, RequireAdmin, RequirementFromMarkers(false, false, true))
	assert.Equal(t, RequireAuth, RequirementFromMarkers(true, true, false))
	assert.Equal(t, RequireSession, RequirementFromMarkers(true, false, false))
	assert.Equal(t, RequireNone, RequirementFromMarkers(false, false, false))
	assert.Equal(t, "session", RequireSession.String())

	store := seeded(ptr("true"), ptr(`{"username":"A","role":"user","status":"active"}`))
	g := New(session.NewContext(store, nil), Notices{}, nil)

	assert.True(t, g.Evaluate(RequireNone).IsAllowed())
	assert.True(t, g.Evaluate(RequireSession).IsAllowed())
	assert.True(t, g.Evaluate(RequireAuth).IsAllowed())
	assert.Equal(t, models.RouteHome, g.Evaluate(RequireAdmin).Destination)

	empty := New(session.NewContext(session.NewMemoryStorage(), nil), Notices{}, nil)
	assert.True(t, empty.Evaluate(RequireNone).IsAllowed())
	assert.Equal(t, RedirectTo(models.RouteLogin, ReasonNotLoggedIn), empty.Evaluate(RequireSession))

	t.Run("session requirement keeps an unreadable record", func(t *testing.T) {
		store := seeded(ptr("true"), ptr("garbage"))
		g := New(session.NewContext(store, nil), Notices{}, nil)

		assert.True(t, g.Evaluate(RequireSession).IsAllowed())
		assert.Equal(t, 2, store.Len())
	})
}

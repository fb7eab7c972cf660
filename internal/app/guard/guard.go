package guard

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/FACorreiaa/lovebell/internal/app/models"
	"github.com/FACorreiaa/lovebell/internal/app/session"
)

// Notices are the messages shown when a guard rejects a user who is
// logged in.
type Notices struct {
	AccountDisabled string
	AdminRequired   string
}

var DefaultNotices = Notices{
	AccountDisabled: "Your account has been disabled, please contact the administrator",
	AdminRequired:   "You do not have administrator permission",
}

type Requirement int

const (
	RequireNone Requirement = iota
	RequireSession
	RequireAuth
	RequireAdmin
)

func (r Requirement) String() string {
	switch r {
	case RequireSession:
		return "session"
	case RequireAuth:
		return "auth"
	case RequireAdmin:
		return "admin"
	default:
		return "none"
	}
}

// RequirementFromMarkers maps page markers to a requirement. The strictest
// marker wins: admin, then auth, then login.
func RequirementFromMarkers(requiresLogin, requiresAuth, requiresAdmin bool) Requirement {
	switch {
	case requiresAdmin:
		return RequireAdmin
	case requiresAuth:
		return RequireAuth
	case requiresLogin:
		return RequireSession
	default:
		return RequireNone
	}
}

type Guard struct {
	session *session.Context
	notices Notices
	logger  *zap.Logger
}

func New(sess *session.Context, notices Notices, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notices.AccountDisabled == "" {
		notices.AccountDisabled = DefaultNotices.AccountDisabled
	}
	if notices.AdminRequired == "" {
		notices.AdminRequired = DefaultNotices.AdminRequired
	}
	return &Guard{session: sess, notices: notices, logger: logger}
}

// Evaluate runs the guard matching req.
func (g *Guard) Evaluate(req Requirement) Outcome {
	switch req {
	case RequireAdmin:
		return g.IsAuthenticatedAdmin()
	case RequireAuth:
		return g.IsAuthenticated()
	case RequireSession:
		return g.RequireLogin()
	default:
		return Allow()
	}
}

// RequireLogin only checks that the flag and record are present. The record
// is neither parsed nor cleared.
func (g *Guard) RequireLogin() Outcome {
	if _, ok := g.session.RawRecord(); !g.session.LoggedIn() || !ok {
		return RedirectTo(models.RouteLogin, ReasonNotLoggedIn)
	}
	return Allow()
}

// IsAuthenticated admits a logged-in session whose record parses and whose
// status is active. Corrupt and disabled sessions are cleared.
func (g *Guard) IsAuthenticated() Outcome {
	_, out := g.authenticate()
	return out
}

// IsAuthenticatedAdmin applies IsAuthenticated and then requires the admin
// role. A non-admin is sent home and the session is kept.
func (g *Guard) IsAuthenticatedAdmin() Outcome {
	rec, out := g.authenticate()
	if !out.IsAllowed() {
		return out
	}
	if !rec.IsAdmin() {
		g.logger.Info("Admin access denied", zap.String("username", rec.Username))
		return RedirectTo(models.RouteHome, ReasonNotAdmin).WithNotice(g.notices.AdminRequired)
	}
	return Allow()
}

func (g *Guard) authenticate() (*session.Record, Outcome) {
	rec, err := g.session.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, RedirectTo(models.RouteLogin, ReasonNotLoggedIn)
		}
		g.logger.Warn("Clearing unreadable session", zap.Error(err))
		g.session.Clear()
		return nil, RedirectTo(models.RouteLogin, ReasonMalformedRecord)
	}

	if !rec.IsActive() {
		g.logger.Info("Clearing session of inactive account",
			zap.String("username", rec.Username),
			zap.String("status", string(rec.Status)))
		g.session.Clear()
		return nil, RedirectTo(models.RouteLogin, ReasonAccountDisabled).WithNotice(g.notices.AccountDisabled)
	}
	return rec, Allow()
}

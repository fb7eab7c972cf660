package guard

type Decision int

const (
	Allowed Decision = iota
	Redirect
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "redirect"
}

// Reason names the branch that produced an Outcome.
type Reason string

const (
	ReasonOK              Reason = "ok"
	ReasonNotLoggedIn     Reason = "not_logged_in"
	ReasonMalformedRecord Reason = "malformed_record"
	ReasonAccountDisabled Reason = "account_disabled"
	ReasonNotAdmin        Reason = "not_admin"
)

// Outcome is the result of a guard. The caller performs the navigation.
type Outcome struct {
	Decision    Decision
	Destination string
	Notice      string
	Reason      Reason
}

func Allow() Outcome {
	return Outcome{Decision: Allowed, Reason: ReasonOK}
}

func RedirectTo(destination string, reason Reason) Outcome {
	return Outcome{Decision: Redirect, Destination: destination, Reason: reason}
}

// WithNotice attaches a message the user must see after the redirect.
func (o Outcome) WithNotice(msg string) Outcome {
	o.Notice = msg
	return o
}

func (o Outcome) IsAllowed() bool {
	return o.Decision == Allowed
}

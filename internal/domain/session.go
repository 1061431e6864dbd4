package domain

type SessionState string

const (
	SessionUnresolved    SessionState = "unresolved"
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

// Identity is the platform-reported user identity. Nil on a Session means the
// server reported no authenticated user.
type Identity struct {
	Email string
	Name  string
}

// Session is the current-user triple owned by the session controller. Credits
// is the server's string-encoded balance; the client displays it verbatim and
// never computes it locally.
type Session struct {
	Identity *Identity
	State    SessionState
	Credits  string
}

// AnonymousCredits is what the balance display resets to outside an
// authenticated session.
const AnonymousCredits = "0"

func (s Session) Authenticated() bool {
	return s.State == SessionAuthenticated
}

// Credit grants and per-operation costs, per the current server contract.
// Display-only: the server is authoritative for every balance.
const (
	GuestCreditGrant      = 25
	RegisteredCreditGrant = 75

	CreditCostChat       = 1
	CreditCostImage      = 3
	CreditCostMultiAgent = 5
)

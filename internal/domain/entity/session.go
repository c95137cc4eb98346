package entity

// SessionState is the client-visible phase of a sign-in session.
type SessionState string

const (
	SessionUnauthenticated   SessionState = "unauthenticated"
	SessionAuthenticating    SessionState = "authenticating"
	SessionProfileIncomplete SessionState = "profile_incomplete"
	SessionProfileComplete   SessionState = "profile_complete"
	SessionAuthenticated     SessionState = "authenticated"
	SessionSignedOut         SessionState = "signed_out"
)

var sessionTransitions = map[SessionState][]SessionState{
	SessionUnauthenticated:   {SessionAuthenticating},
	SessionAuthenticating:    {SessionProfileIncomplete, SessionAuthenticated, SessionUnauthenticated},
	SessionProfileIncomplete: {SessionProfileComplete, SessionSignedOut},
	SessionProfileComplete:   {SessionAuthenticated},
	SessionAuthenticated:     {SessionSignedOut, SessionAuthenticated},
	SessionSignedOut:         {SessionUnauthenticated, SessionAuthenticating},
}

// CanTransition reports whether moving from s to next is allowed.
func (s SessionState) CanTransition(next SessionState) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// SessionStateFor returns the state reached right after a successful sign-in.
func SessionStateFor(user *User) SessionState {
	if user.IsProfileComplete() {
		return SessionAuthenticated
	}

	return SessionProfileIncomplete
}

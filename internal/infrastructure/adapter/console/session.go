package console

// Session is the logged-in state of the operator
type Session struct {
	CardNumber string
}

// sessionResult tells the main loop what to do once a session ends
type sessionResult int

const (
	sessionLoggedOut sessionResult = iota
	sessionExit
)

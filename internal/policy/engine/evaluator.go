package engine

import "context"

// Decision is the outcome of a navigation policy evaluation.
type Decision struct {
	// Allow is true when the session may show the requested screen.
	Allow bool
	// Notice is an optional message to render alongside the screen (e.g. anonymous history).
	Notice string
}

// Evaluator decides whether a session may navigate to a screen.
type Evaluator interface {
	// Decide evaluates navigation to screen (wire name, e.g. "history") for a session that is
	// or is not logged in.
	Decide(ctx context.Context, screen string, loggedIn bool) (Decision, error)
}

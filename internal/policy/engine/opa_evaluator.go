package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"
)

const decisionQuery = "data.palay.navigation.decision"

// AnonymousHistoryNotice is shown when an anonymous session opens the history screen.
const AnonymousHistoryNotice = "Please log in to view your detection history."

// Default Rego policy: main screens require a logged-in session, except history which renders
// a notice for anonymous sessions.
const defaultRegoPolicy = `package palay.navigation

main_screens := {"home", "detect", "history", "library", "profile"}

default allow = false
default notice = ""

allow if {
	input.logged_in
	main_screens[input.screen]
}

allow if {
	input.screen == "history"
}

notice = "` + AnonymousHistoryNotice + `" if {
	input.screen == "history"
	not input.logged_in
}

decision := {"allow": allow, "notice": notice}
`

// OPAEvaluator evaluates navigation policies using OPA Rego.
type OPAEvaluator struct {
	query rego.PreparedEvalQuery
}

// NewOPAEvaluator compiles the given Rego modules, or the built-in policy when none are given.
// Every module must be in package palay.navigation and define decision.
func NewOPAEvaluator(ctx context.Context, policies ...string) (*OPAEvaluator, error) {
	if len(policies) == 0 {
		policies = []string{defaultRegoPolicy}
	}
	modules := make(map[string]string, len(policies))
	for i, p := range policies {
		modules[fmt.Sprintf("policy_%d.rego", i)] = p
	}
	compiler, err := ast.CompileModules(modules)
	if err != nil {
		return nil, fmt.Errorf("compile policies: %w", err)
	}
	q, err := rego.New(
		rego.Query(decisionQuery),
		rego.Compiler(compiler),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare policy query: %w", err)
	}
	return &OPAEvaluator{query: q}, nil
}

// HealthCheck verifies that the compiled policy evaluates to a decision. Returns nil on success.
func (e *OPAEvaluator) HealthCheck(ctx context.Context) error {
	if _, err := e.eval(ctx, "home", true); err != nil {
		return fmt.Errorf("eval policy: %w", err)
	}
	return nil
}

// Decide evaluates the navigation policy. On evaluation failure it logs and falls back to the
// built-in rule so navigation keeps working, returning the error alongside the fallback.
func (e *OPAEvaluator) Decide(ctx context.Context, screen string, loggedIn bool) (Decision, error) {
	d, err := e.eval(ctx, screen, loggedIn)
	if err != nil {
		log.Printf("policy: evaluation failed for screen %q: %v, using defaults", screen, err)
		return DefaultDecision(screen, loggedIn), err
	}
	return d, nil
}

func (e *OPAEvaluator) eval(ctx context.Context, screen string, loggedIn bool) (Decision, error) {
	input := map[string]interface{}{
		"screen":    screen,
		"logged_in": loggedIn,
	}
	rs, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return Decision{}, err
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return Decision{}, fmt.Errorf("policy query returned no result")
	}
	obj, ok := rs[0].Expressions[0].Value.(map[string]interface{})
	if !ok {
		return Decision{}, fmt.Errorf("policy decision has type %T, want object", rs[0].Expressions[0].Value)
	}
	var d Decision
	if v, ok := obj["allow"].(bool); ok {
		d.Allow = v
	}
	if v, ok := obj["notice"].(string); ok {
		d.Notice = v
	}
	return d, nil
}

// DefaultDecision is the built-in navigation rule, used when policy evaluation fails.
func DefaultDecision(screen string, loggedIn bool) Decision {
	switch screen {
	case "history":
		if loggedIn {
			return Decision{Allow: true}
		}
		return Decision{Allow: true, Notice: AnonymousHistoryNotice}
	case "home", "detect", "library", "profile":
		return Decision{Allow: loggedIn}
	default:
		return Decision{}
	}
}

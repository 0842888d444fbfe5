package minpl

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/hlah/minpl/term"
)

// varProvider hands out placeholder variable names for clause renaming.
// Names are underscore-prefixed, which the grammar rejects in user
// identifiers, so they cannot collide with query variables.
type varProvider struct {
	count int
}

func (p *varProvider) next() string {
	p.count++
	return fmt.Sprintf("_%d", p.count)
}

// Solver enumerates proofs of goals against a database by SLD resolution:
// leftmost goal first, clauses in database order, depth-first.
type Solver struct {
	db     *Database
	logger hclog.Logger
}

// NewSolver creates a solver over db. A nil logger disables tracing.
func NewSolver(db *Database, logger hclog.Logger) *Solver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Solver{db: db, logger: logger}
}

// Prove returns every binding of the goal's free variables under which the
// goal follows from the database, in clause order. An empty environment
// means the goal holds without bindings. Does not terminate on
// left-recursive rule sets.
func (s *Solver) Prove(goal term.Interface) []*term.Env {
	scope := term.FreeVariables(goal)
	fresh := &varProvider{}
	solutions := s.proveGoals([]term.Interface{goal}, fresh)
	answers := make([]*term.Env, 0, len(solutions))
	for _, sol := range solutions {
		answers = append(answers, sol.Normalized(scope))
	}
	return answers
}

// proveGoals resolves a stack of goals. Goals are popped from the tail;
// pushes happen in reverse so processing is left to right.
func (s *Solver) proveGoals(goals []term.Interface, fresh *varProvider) []*term.Env {
	if len(goals) == 0 {
		return []*term.Env{term.NewEnv()}
	}

	goal := goals[len(goals)-1]
	rest := goals[:len(goals)-1]
	s.logger.Trace("call", "goal", goal)

	var solutions []*term.Env
	for _, rule := range s.db.Rules() {
		renamed := renameRule(rule, fresh)
		env, ok := Unify(goal, renamed.Head)
		if !ok {
			continue
		}
		subgoals := make([]term.Interface, 0, len(renamed.Body))
		for i := len(renamed.Body) - 1; i >= 0; i-- {
			subgoals = append(subgoals, env.Apply(renamed.Body[i]))
		}
		for _, bodySol := range s.proveGoals(subgoals, fresh) {
			if merged, ok := env.Merge(bodySol); ok {
				solutions = append(solutions, merged)
			}
		}
	}

	var answers []*term.Env
	for _, sol := range solutions {
		remaining := make([]term.Interface, len(rest))
		for i, g := range rest {
			remaining[i] = sol.Apply(g)
		}
		for _, tail := range s.proveGoals(remaining, fresh) {
			if merged, ok := sol.Merge(tail); ok {
				answers = append(answers, merged)
			}
		}
	}

	if len(answers) == 0 {
		s.logger.Trace("fail", "goal", goal)
	} else {
		s.logger.Trace("exit", "goal", goal, "solutions", len(answers))
	}
	return answers
}

// renameRule freshens every variable of the rule. Each distinct source
// variable maps to the same placeholder across head and body of this one
// renaming; a clause is renamed anew on every selection.
func renameRule(r Rule, fresh *varProvider) Rule {
	fvs := term.FreeVariables(append([]term.Interface{r.Head}, r.Body...)...)
	if len(fvs) == 0 {
		return r
	}
	renaming := term.NewEnv()
	for _, v := range fvs {
		renaming.Bind(string(v), term.Variable(fresh.next()))
	}
	body := make([]term.Interface, len(r.Body))
	for i, g := range r.Body {
		body[i] = renaming.Apply(g)
	}
	return Rule{Head: renaming.Apply(r.Head), Body: body}
}

package minpl

import (
	"github.com/hashicorp/go-hclog"

	"github.com/hlah/minpl/term"
)

// Interpreter bundles a database with the textual front-end. Clauses are
// consulted up front; queries never modify the database.
type Interpreter struct {
	db     *Database
	logger hclog.Logger
}

// New creates an interpreter with an empty database. A nil logger disables
// solver tracing.
func New(logger hclog.Logger) *Interpreter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Interpreter{db: NewDatabase(), logger: logger}
}

// Exec parses a program and appends its clauses to the database.
func (i *Interpreter) Exec(text string) error {
	db, err := NewParser(text).Database()
	if err != nil {
		return err
	}
	for _, r := range db.Rules() {
		i.db.Add(r)
	}
	return nil
}

// Query parses a single query and returns its solutions in clause order.
func (i *Interpreter) Query(text string) ([]*term.Env, error) {
	goal, err := NewParser(text).Query()
	if err != nil {
		return nil, err
	}
	return NewSolver(i.db, i.logger).Prove(goal), nil
}

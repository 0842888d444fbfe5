package minpl

import (
	"bytes"
	"fmt"

	"github.com/hlah/minpl/term"
)

// Rule is a Horn clause: a head with a possibly empty body of goals.
// A fact is a rule with no body.
type Rule struct {
	Head term.Interface
	Body []term.Interface
}

func (r Rule) String() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, r.Head)
	if len(r.Body) > 0 {
		fmt.Fprint(&buf, " :- ")
		for i, g := range r.Body {
			if i > 0 {
				fmt.Fprint(&buf, ", ")
			}
			fmt.Fprint(&buf, g)
		}
	}
	return buf.String()
}

// Database is an ordered collection of rules. Insertion order determines
// the order in which solutions are enumerated.
type Database struct {
	rules []Rule
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{}
}

// Add appends a rule to the database.
func (db *Database) Add(r Rule) {
	db.rules = append(db.rules, r)
}

// WithFact appends a bodiless rule and returns the database.
func (db *Database) WithFact(head term.Interface) *Database {
	db.Add(Rule{Head: head})
	return db
}

// WithRule appends a rule and returns the database.
func (db *Database) WithRule(head term.Interface, body ...term.Interface) *Database {
	db.Add(Rule{Head: head, Body: body})
	return db
}

// Rules returns the rules in insertion order.
func (db *Database) Rules() []Rule {
	return db.rules
}

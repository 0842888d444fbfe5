package minpl

import (
	"fmt"

	"github.com/hlah/minpl/term"
)

// Parser builds terms, clauses, and databases out of the token stream.
type Parser struct {
	lexer   *Lexer
	current Token
}

func NewParser(input string) *Parser {
	p := Parser{lexer: NewLexer(input)}
	p.current = p.lexer.Next()
	return &p
}

func (p *Parser) accept(k TokenKind, vals ...string) (string, error) {
	v, err := p.expect(k, vals...)
	if err != nil {
		return "", err
	}
	p.current = p.lexer.Next()
	return v, nil
}

func (p *Parser) expect(k TokenKind, vals ...string) (string, error) {
	if p.current.Kind != k {
		return "", &unexpectedToken{
			ExpectedKind: k,
			ExpectedVals: vals,
			Actual:       p.current,
		}
	}

	if len(vals) > 0 {
		for _, v := range vals {
			if v == p.current.Val {
				return v, nil
			}
		}
		return "", &unexpectedToken{
			ExpectedKind: k,
			ExpectedVals: vals,
			Actual:       p.current,
		}
	}

	return p.current.Val, nil
}

// Database parses a sequence of clauses up to the end of input.
func (p *Parser) Database() (*Database, error) {
	db := NewDatabase()
	for {
		if _, err := p.accept(TokenEOS); err == nil {
			return db, nil
		}

		r, err := p.Clause()
		if err != nil {
			return nil, err
		}
		db.Add(r)
	}
}

// Clause parses `head.` or `head :- goal, ..., goal.`.
func (p *Parser) Clause() (Rule, error) {
	head, err := p.Term()
	if err != nil {
		return Rule{}, err
	}

	sep, err := p.accept(TokenSeparator, ".", ":-")
	if err != nil {
		return Rule{}, fmt.Errorf("clause: %w", err)
	}
	if sep == "." {
		return Rule{Head: head}, nil
	}

	var body []term.Interface
	for {
		g, err := p.Term()
		if err != nil {
			return Rule{}, err
		}
		body = append(body, g)

		sep, err := p.accept(TokenSeparator, ",", ".")
		if err != nil {
			return Rule{}, fmt.Errorf("clause: %w", err)
		}
		if sep == "." {
			return Rule{Head: head, Body: body}, nil
		}
	}
}

// Query parses a single term terminated by `.` and requires the input to
// end there.
func (p *Parser) Query() (term.Interface, error) {
	t, err := p.Term()
	if err != nil {
		return nil, err
	}
	if _, err := p.accept(TokenSeparator, "."); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if _, err := p.accept(TokenEOS); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return t, nil
}

// Term parses a variable, an atom, or a functor with at least one argument.
func (p *Parser) Term() (term.Interface, error) {
	if v, err := p.accept(TokenVariable); err == nil {
		return term.Variable(v), nil
	}

	a, err := p.accept(TokenAtom)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}

	if _, err := p.accept(TokenSeparator, "("); err != nil {
		return term.Atom(a), nil
	}

	var args []term.Interface
	for {
		t, err := p.Term()
		if err != nil {
			return nil, err
		}
		args = append(args, t)

		sep, err := p.accept(TokenSeparator, ",", ")")
		if err != nil {
			return nil, fmt.Errorf("term: %w", err)
		}
		if sep == ")" {
			break
		}
	}

	return &term.Compound{Functor: a, Args: args}, nil
}

type unexpectedToken struct {
	ExpectedKind TokenKind
	ExpectedVals []string
	Actual       Token
}

func (e *unexpectedToken) Error() string {
	return fmt.Sprintf("expected: <%s %s>, actual: %s", e.ExpectedKind, e.ExpectedVals, e.Actual)
}

package tracker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/apimgr/employee-tracker/src/choice"
	"github.com/apimgr/employee-tracker/src/database"
	"github.com/apimgr/employee-tracker/src/display"
	"github.com/apimgr/employee-tracker/src/logging"
	"github.com/apimgr/employee-tracker/src/prompt"
)

var errScriptExhausted = errors.New("script exhausted")

// asked records one prompt shown to the user
type asked struct {
	message  string
	choices  []choice.Choice
	rejected []string // validator messages shown before an accepted answer
}

// scriptedPrompter answers prompts from a fixed queue. Entries are:
// string (select label, input text or decimal text), bool (confirm),
// choice.Choice (forced selection) or error (returned as is).
type scriptedPrompter struct {
	answers []interface{}
	asked   []asked
}

func script(answers ...interface{}) *scriptedPrompter {
	return &scriptedPrompter{answers: answers}
}

func (s *scriptedPrompter) next() (interface{}, error) {
	if len(s.answers) == 0 {
		return nil, errScriptExhausted
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	if err, ok := a.(error); ok {
		return nil, err
	}
	return a, nil
}

func (s *scriptedPrompter) Select(message string, choices []choice.Choice) (choice.Choice, error) {
	s.asked = append(s.asked, asked{message: message, choices: choices})
	if len(choices) == 0 {
		return choice.Choice{}, choice.ErrNoItems
	}

	a, err := s.next()
	if err != nil {
		return choice.Choice{}, err
	}
	switch v := a.(type) {
	case choice.Choice:
		return v, nil
	case string:
		for _, c := range choices {
			if c.Label == v {
				return c, nil
			}
		}
		return choice.Choice{}, fmt.Errorf("no choice labelled %q in %q", v, message)
	}
	return choice.Choice{}, fmt.Errorf("unexpected answer %v for select %q", a, message)
}

func (s *scriptedPrompter) Input(message string, validate func(string) error) (string, error) {
	s.asked = append(s.asked, asked{message: message})
	cur := &s.asked[len(s.asked)-1]
	for {
		a, err := s.next()
		if err != nil {
			return "", err
		}
		text, ok := a.(string)
		if !ok {
			return "", fmt.Errorf("unexpected answer %v for input %q", a, message)
		}
		if validate != nil {
			if err := validate(text); err != nil {
				cur.rejected = append(cur.rejected, err.Error())
				continue
			}
		}
		return text, nil
	}
}

func (s *scriptedPrompter) Decimal(message string, validate func(decimal.Decimal) error) (decimal.Decimal, error) {
	s.asked = append(s.asked, asked{message: message})
	cur := &s.asked[len(s.asked)-1]
	for {
		a, err := s.next()
		if err != nil {
			return decimal.Zero, err
		}
		text, ok := a.(string)
		if !ok {
			return decimal.Zero, fmt.Errorf("unexpected answer %v for decimal %q", a, message)
		}
		d, err := decimal.NewFromString(text)
		if err != nil {
			cur.rejected = append(cur.rejected, prompt.ErrNotANumber.Error())
			continue
		}
		if validate != nil {
			if err := validate(d); err != nil {
				cur.rejected = append(cur.rejected, err.Error())
				continue
			}
		}
		return d, nil
	}
}

func (s *scriptedPrompter) Confirm(message string, def bool) (bool, error) {
	s.asked = append(s.asked, asked{message: message})
	a, err := s.next()
	if err != nil {
		return false, err
	}
	ok, isBool := a.(bool)
	if !isBool {
		return false, fmt.Errorf("unexpected answer %v for confirm %q", a, message)
	}
	return ok, nil
}

var _ prompt.Prompter = (*scriptedPrompter)(nil)

// newTestStore opens a migrated SQLite repository in a temp dir
func newTestStore(t *testing.T) *database.Repository {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, &database.Config{
		Driver:  "sqlite",
		DataDir: t.TempDir(),
		MaxOpen: 1,
		MaxIdle: 1,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := database.NewMigrator(db).Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return database.NewRepository(db)
}

// newTestTracker wires a tracker to store and p, printing into the returned buffer
func newTestTracker(store Store, p prompt.Prompter) (*Tracker, *bytes.Buffer) {
	var out bytes.Buffer
	return New(store, p, display.NewPrinter(&out, false), logging.Discard()), &out
}

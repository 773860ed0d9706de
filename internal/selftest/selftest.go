// Package selftest holds the documented example checks run by tstdot --test.
package selftest

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/e11jah/tst"
)

// ErrCheckFailed is wrapped by every failed check.
var ErrCheckFailed = errors.New("check failed")

// Check is one membership query with its expected answer.
type Check struct {
	Word string
	Want bool
}

// Words is the example word list.
var Words = []string{"test", "term", "tell", "tested"}

// Checks are the documented membership results for Words.
var Checks = []Check{
	{"tell", true},
	{"test", true},
	{"term", true},
	{"text", false},
	{"team", false},
	{"te", true},
	{"tested", true},
	{"testing", false},
}

// Run builds a tree from words and verifies every check against it.
// The returned error joins one error per failed check.
func Run(log *slog.Logger, words []string, checks []Check) error {
	tree := tst.New(words...)

	var errs []error
	for _, c := range checks {
		got := tree.Contains(c.Word)
		if got != c.Want {
			log.Warn("check failed", "word", c.Word, "want", c.Want, "got", got)
			errs = append(errs, fmt.Errorf("%w: Contains(%q) = %v, want %v", ErrCheckFailed, c.Word, got, c.Want))
			continue
		}
		log.Debug("check passed", "word", c.Word, "got", got)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	log.Info("self-test passed", "checks", len(checks))
	return nil
}

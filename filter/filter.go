// Package filter narrows catalog results with boolean expressions written in
// the expr language.
//
// # Usage
//
//	f, err := filter.Compile(`kind == "song" and isFree() == false and releasedAfter("2020-01-01")`)
//	if err != nil {
//		return err
//	}
//	matches, err := f.Apply(resp.Results)
//
// The environment exposes the common result fields in camelCase (trackName,
// artistName, primaryGenreName, price, explicit, ...), the full record as
// Result, and these helpers:
//
//   - hasGenre(name): case-insensitive match against the primary genre and genres
//   - isFree(): no positive price
//   - releasedAfter(date), releasedBefore(date): compare the release date with a YYYY-MM-DD date
//   - containsFold, hasPrefixFold, hasSuffixFold: case-insensitive string tests
//     (the expr operators contains, startsWith and endsWith are case-sensitive)
//   - lower, upper, parseDate, daysAgo, now
//
// Unknown names are rejected when compiling. A compiled Filter is safe for
// concurrent use.
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/itunesapi/itunes"
)

// Filter is a compiled expression
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles expression into a Filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnvironment(itunes.NewResult())),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// String returns the expression
func (f *Filter) String() string {
	return f.expression
}

// Match evaluates the filter against r
func (f *Filter) Match(r itunes.Result) (bool, error) {
	out, err := expr.Run(f.program, newEnvironment(r))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Title:      r.Title(),
			Err:        err,
		}
	}
	// AsBool guarantees the type
	return out.(bool), nil
}

// Apply returns the results that match, in their original order. The input
// slice is not modified and the result is never nil.
func (f *Filter) Apply(results []itunes.Result) ([]itunes.Result, error) {
	matches := make([]itunes.Result, 0, len(results))
	for _, r := range results {
		ok, err := f.Match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

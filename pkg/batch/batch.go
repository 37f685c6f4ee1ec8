// Package batch runs a function over a list of items under an explicit failure policy.
package batch

import "fmt"

// Policy decides what happens when one item fails.
type Policy int

const (
	// FailFast stops at the first failing item and returns its error.
	FailFast Policy = iota
	// ContinueOnError reports the failure and moves on; the call itself never fails.
	ContinueOnError
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail_fast"
	case ContinueOnError:
		return "continue_on_error"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ItemError is a failure of the item at Index.
type ItemError struct {
	Index int
	Err   error
}

func (e ItemError) Error() string { return fmt.Sprintf("item %d: %v", e.Index, e.Err) }
func (e ItemError) Unwrap() error { return e.Err }

// Run applies fn to every item in order. Under FailFast the first error is returned
// (wrapped in an ItemError) together with the results collected so far. Under
// ContinueOnError failed items are passed to onErr and skipped, and the returned error is nil.
func Run[T, R any](items []T, policy Policy, fn func(T) (R, error), onErr func(ItemError)) ([]R, error) {
	results := make([]R, 0, len(items))
	for i, item := range items {
		r, err := fn(item)
		if err != nil {
			ie := ItemError{Index: i, Err: err}
			if policy == FailFast {
				return results, ie
			}
			if onErr != nil {
				onErr(ie)
			}
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

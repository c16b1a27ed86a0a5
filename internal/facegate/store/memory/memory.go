// Package memory holds mutex-guarded in-memory implementations of the
// store interfaces, intended for tests and dev environments.  Each store
// exposes inspection helpers the production implementations do not.
package memory

import "fmt"

type notFoundError int

func (e notFoundError) Error() string {
	return fmt.Sprintf("employee %d not found", int(e))
}

func errNotFound(id int) error { return notFoundError(id) }

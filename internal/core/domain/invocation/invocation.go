/*
Package invocation models the argument list of a single pdg run.
*/
package invocation

/*
Args is a read-only view over the positional arguments of one invocation.
The underlying values are never modified; reads advance an explicit cursor.
Argument 0 is the alias, argument 1 an optional payload, the rest package names.
*/
type Args struct {
	values []string
	pos    int
}

// New copies values so later changes by the caller are not observed.
func New(values []string) *Args {
	v := make([]string, len(values))
	copy(v, values)
	return &Args{values: v}
}

// Next returns the argument under the cursor and advances past it.
func (a *Args) Next() (string, bool) {
	if a.pos >= len(a.values) {
		return "", false
	}
	v := a.values[a.pos]
	a.pos++
	return v, true
}

// Remaining is the number of arguments not yet read.
func (a *Args) Remaining() int {
	return len(a.values) - a.pos
}

// Rest returns a copy of every unread argument and moves the cursor to the end.
func (a *Args) Rest() []string {
	rest := make([]string, len(a.values)-a.pos)
	copy(rest, a.values[a.pos:])
	a.pos = len(a.values)
	return rest
}

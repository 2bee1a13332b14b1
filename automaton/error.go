package automaton

type AutomatonError struct {
	message string
}

func newAutomatonError(message string) *AutomatonError {
	return &AutomatonError{
		message: message,
	}
}

func (e *AutomatonError) Error() string {
	return e.message
}

var (
	ErrNoState          = newAutomatonError("an automaton needs at least one state")
	ErrUndefinedState   = newAutomatonError("undefined state")
	ErrInvalidSymbol    = newAutomatonError("a symbol must consist of exactly one character")
	ErrDigestMismatch   = newAutomatonError("digest mismatch; the compiled automaton is corrupted")
	ErrDuplicateState   = newAutomatonError("duplicate state")
	ErrDuplicateSymbol  = newAutomatonError("duplicate symbol")
	ErrEmptyStateName   = newAutomatonError("a state name must not be empty")
	ErrNoTransitionDest = newAutomatonError("a transition needs at least one destination state")
)

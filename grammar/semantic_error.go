package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	// ErrNoProduction means derivation reached a non-terminal that has no alternatives.
	ErrNoProduction = newSemanticError("a non-terminal has no production")

	// ErrMalformedRule means an alternative is neither a terminal nor a terminal followed by a non-terminal,
	// so it cannot be converted into a transition.
	ErrMalformedRule = newSemanticError("a rule must be a terminal optionally followed by a non-terminal")

	ErrUndefinedStart     = newSemanticError("the start symbol must be a non-terminal")
	ErrOverlappingSymbols = newSemanticError("a symbol cannot be both a terminal and a non-terminal")
	ErrUndefinedSymbol    = newSemanticError("undefined symbol")
	ErrUnknownLHS         = newSemanticError("the left-hand side of a production must be a non-terminal")

	semErrNoProduction        = newSemanticError("a grammar needs at least one production")
	semErrMultiCharLHS        = newSemanticError("a non-terminal must consist of exactly one character")
	semErrDuplicateProduction = newSemanticError("duplicate production")
	semErrDuplicateDirective  = newSemanticError("duplicate directive")
	semErrDirInvalidName      = newSemanticError("invalid directive name")
	semErrDirInvalidParam     = newSemanticError("invalid parameter")
)

package errors

import stderrors "errors"

// Is, As and Join re-export the standard library helpers so callers that
// import this package do not need a second errors import.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

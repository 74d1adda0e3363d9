package curvereduce

import "errors"

// ErrInvalidArgument indicates a violated precondition, such as a negative
// tolerance or an empty search range. Errors returned by this package wrap it
// and can be checked with [errors.Is].
var ErrInvalidArgument = errors.New("curvereduce: invalid argument")

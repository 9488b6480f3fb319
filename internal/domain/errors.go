package domain

import "errors"

// ErrInvalidScore indicates a criterion score outside the 1..5 scale.
var ErrInvalidScore = errors.New("invalid criterion score")

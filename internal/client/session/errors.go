package session

import (
	"errors"
	"fmt"
)

var (
	ErrDecode          = errors.New("cannot decode credential")
	ErrMalformedToken  = fmt.Errorf("%w: malformed token", ErrDecode)
	ErrMissingUsername = fmt.Errorf("%w: no username claim", ErrDecode)
)

package render

import (
	"github.com/pkg/errors"
)

// ErrInvalidSize is returned for non-positive or oversized buffer dimensions
var ErrInvalidSize = errors.New("invalid buffer size")

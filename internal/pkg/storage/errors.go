package storage

import "errors"

var ErrInvalidPath = errors.New("path escapes storage root")

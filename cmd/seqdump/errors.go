package main

import "errors"

// ErrUnknownGenerator is returned for a generator name with no registered
// constructor.
var ErrUnknownGenerator = errors.New("seqdump: unknown generator")

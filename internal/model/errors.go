package model

import "errors"

// ErrInvalidChild marks child profile validation failures so callers can map
// them to 400-class responses with errors.Is.
var ErrInvalidChild = errors.New("invalid child profile")

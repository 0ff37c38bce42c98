package organizer

import "errors"

var (
	ErrNotFound    = errors.New("organizer not found")
	ErrBadSecret   = errors.New("invalid api secret")
	ErrNoSecretSet = errors.New("organizer has no api secret configured")
)

package mines

import "errors"

var (
	ErrInvalidSettings = errors.New("invalid game settings")
	ErrBadSettingsSeed = errors.New("malformed game settings")
)

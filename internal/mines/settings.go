package mines

import (
	"fmt"
	"strings"
)

// GameSettings are the three parameters of a game. Callers are expected to
// Validate them; [Engine.Reset] refuses anything that does not pass.
type GameSettings struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Mines  int `json:"mines"`
}

func (s GameSettings) Unpack() (w int, h int, m int) {
	return s.Width, s.Height, s.Mines
}

func (s GameSettings) Cells() int {
	return s.Width * s.Height
}

func (s GameSettings) Validate() error {
	switch {
	case s.Width <= 0:
		return fmt.Errorf("%w: width must be positive (width = %d)",
			ErrInvalidSettings, s.Width)
	case s.Height <= 0:
		return fmt.Errorf("%w: height must be positive (height = %d)",
			ErrInvalidSettings, s.Height)
	case s.Mines <= 0:
		return fmt.Errorf("%w: mine count must be positive (mines = %d)",
			ErrInvalidSettings, s.Mines)
	case s.Mines >= s.Cells():
		return fmt.Errorf("%w: mine count must be less than %d (mines = %d)",
			ErrInvalidSettings, s.Cells(), s.Mines)
	}
	return nil
}

// String returns the compact "width:height:mines" form read back by
// [ParseSettings].
func (s GameSettings) String() string {
	return fmt.Sprintf("%d:%d:%d", s.Width, s.Height, s.Mines)
}

func ParseSettings(seed string) (GameSettings, error) {
	var s GameSettings
	sseed := strings.ReplaceAll(strings.TrimSpace(seed), ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &s.Width, &s.Height, &s.Mines)
	if n != 3 || err != nil {
		return GameSettings{}, fmt.Errorf(
			`%w (seed = "%s", n = %d, err = %v)`, ErrBadSettingsSeed, seed, n, err,
		)
	}
	if strings.Count(seed, ":") != 2 {
		return GameSettings{}, fmt.Errorf(`%w (seed = "%s")`, ErrBadSettingsSeed, seed)
	}
	return s, nil
}

package commands

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type settingsParams struct {
	Width  int `schema:"width,required"`
	Height int `schema:"height,required"`
	Mines  int `schema:"mines,required"`
}

// ParseSettingsQuery decodes and validates game settings given as query
// values (width, height, mines).
func ParseSettingsQuery(query map[string][]string) (mines.GameSettings, error) {
	var params settingsParams
	if err := dec.Decode(&params, query); err != nil {
		return mines.GameSettings{}, fmt.Errorf("%w: %w", mines.ErrBadSettingsSeed, err)
	}
	settings := mines.GameSettings(params)
	if err := settings.Validate(); err != nil {
		return mines.GameSettings{}, err
	}
	return settings, nil
}

// ParseSettings accepts either the compact "w:h:m" form or a query string
// such as "width=9&height=9&mines=10". The result is validated.
func ParseSettings(s string) (mines.GameSettings, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "=") {
		settings, err := mines.ParseSettings(s)
		if err != nil {
			return mines.GameSettings{}, err
		}
		if err := settings.Validate(); err != nil {
			return mines.GameSettings{}, err
		}
		return settings, nil
	}
	query, err := url.ParseQuery(s)
	if err != nil {
		return mines.GameSettings{}, fmt.Errorf("%w: %w", mines.ErrBadSettingsSeed, err)
	}
	return ParseSettingsQuery(query)
}

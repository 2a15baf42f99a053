package config

import (
	"fmt"
	"time"

	"toolkit/core/utils"

	"golang.org/x/text/language"
)

// FormatConfig fixes the conventions used to read and render values.
type FormatConfig struct {
	// Locale is a BCP 47 tag used for number rendering (e.g. en-US, de-DE).
	Locale string `mapstructure:"locale" default:"en-US"`
	// DateLayout is a Go time layout tried before the default layouts.
	DateLayout string `mapstructure:"date_layout" default:""`
	// TimeZone is an IANA zone name applied to dates without zone information.
	TimeZone string `mapstructure:"time_zone" default:"UTC"`
}

// Language parses Locale.
func (c FormatConfig) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// DateFormat builds the date parsing format described by the configuration.
func (c FormatConfig) DateFormat() (utils.Format, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return utils.Format{}, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}

	layouts := append([]string(nil), utils.DefaultFormat.Layouts...)
	if c.DateLayout != "" {
		layouts = append([]string{c.DateLayout}, layouts...)
	}
	return utils.Format{Layouts: layouts, Location: loc}, nil
}

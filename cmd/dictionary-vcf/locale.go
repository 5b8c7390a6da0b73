package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

// LocaleFlag is a BCP 47 language tag given on the command line.
type LocaleFlag struct {
	tag language.Tag
}

// Set implements pflag.Value.
func (l *LocaleFlag) Set(v string) error {
	tag, err := language.Parse(v)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", v, err)
	}
	l.tag = tag
	return nil
}

// String implements pflag.Value.
func (l *LocaleFlag) String() string {
	if l == nil || l.tag == language.Und {
		return ""
	}
	return l.tag.String()
}

// Type implements pflag.Value.
func (l *LocaleFlag) Type() string {
	return "locale"
}

// TagOr returns the parsed tag, or fallback when the flag was not given.
func (l *LocaleFlag) TagOr(fallback language.Tag) language.Tag {
	if l.tag == language.Und {
		return fallback
	}
	return l.tag
}

var (
	_ pflag.Value = (*LocaleFlag)(nil)
)

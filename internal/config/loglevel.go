package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
)

// LogLevel controls which summary facts are printed once the animation ends.
type LogLevel int

const (
	LogNone    LogLevel = iota // print nothing
	LogMinimal                 // only the move count
	LogAll                     // move count, tower height and delay
)

var _ pflag.Value = (*LogLevel)(nil)

// ParseLogLevel matches none, minimal or all, ignoring case.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return LogNone, nil
	case "minimal":
		return LogMinimal, nil
	case "all":
		return LogAll, nil
	default:
		return LogMinimal, fmt.Errorf("%w: %q is not a valid value for log level (none, minimal, all)", ErrInvalidValue, s)
	}
}

func (l LogLevel) String() string {
	switch l {
	case LogNone:
		return "none"
	case LogMinimal:
		return "minimal"
	case LogAll:
		return "all"
	default:
		return fmt.Sprintf("loglevel(%d)", int(l))
	}
}

// Set implements pflag.Value.
func (l *LogLevel) Set(s string) error {
	v, err := ParseLogLevel(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Type implements pflag.Value.
func (l *LogLevel) Type() string {
	return "level"
}

// logLevelHook decodes strings into LogLevel values.
func logLevelHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(LogLevel(0)) || from.Kind() != reflect.String {
			return data, nil
		}
		return ParseLogLevel(data.(string))
	}
}

package config

import (
	"errors"
	"fmt"
)

// log levels, same numbering as zapcore.Level
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

var ErrEmptyTimeFormat = errors.New("log time format must not be empty")

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("log level %d not in [%d, %d]", c.Level, DEBUG_LEVEL, FATAL_LEVEL)
	}
	if c.TimeFormat == "" {
		return ErrEmptyTimeFormat
	}
	return nil
}

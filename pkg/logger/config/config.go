package config

import (
	"fmt"
	"time"
)

// log levels, same ordering as zapcore.Level (debug = -1 ... fatal = 5).
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("log level must be in [%d,%d] (got %d)", DEBUG_LEVEL, FATAL_LEVEL, c.Level)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("log time format must not be empty")
	}
	// a layout that formats to itself carries no reference-time fields
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == c.TimeFormat {
		return fmt.Errorf("log time format %q is not a time layout", c.TimeFormat)
	}
	return nil
}

package logging

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Verbosity is how much diagnostic output the user asked for.
type Verbosity int

const (
	Silent Verbosity = iota
	Normal
	Verbose
	Deafening
)

var verbosityNames = map[Verbosity]string{
	Silent:    "silent",
	Normal:    "normal",
	Verbose:   "verbose",
	Deafening: "deafening",
}

func (v Verbosity) String() string {
	if s, ok := verbosityNames[v]; ok {
		return s
	}
	return strconv.Itoa(int(v))
}

// ParseVerbosity accepts a level name or its number (0-3). An empty string
// means Normal.
func ParseVerbosity(s string) (Verbosity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Normal, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < int(Silent) || n > int(Deafening) {
			return Normal, fmt.Errorf("verbosity %d out of range 0-3", n)
		}
		return Verbosity(n), nil
	}
	for v, name := range verbosityNames {
		if name == s {
			return v, nil
		}
	}
	return Normal, fmt.Errorf("unknown verbosity %q: expected silent, normal, verbose or deafening", s)
}

// Level returns the lowest zerolog level emitted at this verbosity.
func (v Verbosity) Level() zerolog.Level {
	switch {
	case v <= Silent:
		return zerolog.ErrorLevel
	case v == Normal:
		return zerolog.InfoLevel
	case v == Verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New returns a console logger writing to w at the level for v.
func New(w io.Writer, v Verbosity) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}
	return zerolog.New(output).Level(v.Level()).With().Timestamp().Logger()
}

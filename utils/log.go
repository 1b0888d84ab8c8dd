package utils

import (
	"io"

	"github.com/go-pkgz/lgr"
)

// NewLogger builds the process logger. Debug turns on DEBUG lines and caller info.
func NewLogger(debug bool, out io.Writer) *lgr.Logger {
	opts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.Out(out), lgr.Err(out)}
	if debug {
		opts = append(opts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}
	return lgr.New(opts...)
}

package wirehttp

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var logger *zerolog.Logger
var maxLineSize int64 = 64 * 1024
var maxHeaderCount = 256

func SetupWireHTTPLogger(l *zerolog.Logger) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger = l
}
func SetupWireHTTP(l *zerolog.Logger, mls int64, mhc int) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger = l
	if mls > 0 {
		maxLineSize = mls
	}
	if mhc > 0 {
		maxHeaderCount = mhc
	}
}

func GetLogger() *zerolog.Logger {
	return logger
}

// GetMaxLineSize returns the current limit on a single response line.
func GetMaxLineSize() int64 {
	return maxLineSize
}

func ChangeMaxLineSize(n int64) {
	if n > 0 {
		maxLineSize = n
	}
}

// GetMaxHeaderCount returns the current limit on response header fields.
func GetMaxHeaderCount() int {
	return maxHeaderCount
}

func ChangeMaxHeaderCount(n int) {
	if n > 0 {
		maxHeaderCount = n
	}
}

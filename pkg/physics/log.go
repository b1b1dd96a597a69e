package physics

import "github.com/opd-ai/go-antigravity/pkg/logging"

var logger = logging.NewLogger()

// SetLogger replaces the package logger used for numeric guard warnings.
func SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

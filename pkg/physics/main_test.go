package physics

import (
	"os"
	"testing"

	"github.com/opd-ai/go-antigravity/pkg/logging"
)

func TestMain(m *testing.M) {
	SetLogger(logging.Discard())
	os.Exit(m.Run())
}

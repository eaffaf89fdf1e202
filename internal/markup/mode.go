package markup

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the shape of the generated document.
type Mode int

const (
	// ModeStandalone produces a complete HTML page.
	ModeStandalone Mode = iota
	// ModeFragment produces a template fragment for a single-page application shell.
	ModeFragment
)

var ErrUnsupportedMode = errors.New("unsupported render mode")

func (m Mode) String() string {
	switch m {
	case ModeStandalone:
		return "standalone"
	case ModeFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standalone":
		return ModeStandalone, nil
	case "fragment":
		return ModeFragment, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}

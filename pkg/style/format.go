package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styled reports whether output should carry terminal styling. Plain text
// wins when NO_COLOR is set, when output is piped or redirected, or when the
// terminal advertises no color support.
func Styled(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

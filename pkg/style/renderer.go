package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/stagehand-dev/stagehand/pkg/classpath"
	"github.com/stagehand-dev/stagehand/pkg/errors"
	"github.com/stagehand-dev/stagehand/pkg/install"
)

// Renderer produces the terminal output for the path command and for abort
// reports. With styling off every helper falls back to plain text.
type Renderer struct {
	styled bool
}

// NewRenderer creates a renderer. styled selects rich terminal output.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// RenderAssembly renders the discovered install root and the assembled
// module search path.
func (r *Renderer) RenderAssembly(dir install.Dir, asm *classpath.Assembly) string {
	var sb strings.Builder

	sb.WriteString(r.title("Installation directory"))
	sb.WriteString("\n")
	sb.WriteString(r.path(dir.String()))
	sb.WriteString("\n\n")

	sb.WriteString(r.title("Module search path"))
	sb.WriteString("\n")
	if len(asm.Locators) == 0 {
		sb.WriteString(r.muted("(empty)"))
		sb.WriteString("\n")
	}
	for _, loc := range asm.Locators {
		sb.WriteString(r.listItem(r.path(loc.Path)))
		sb.WriteString("\n")
	}

	for _, diag := range asm.Diagnostics {
		sb.WriteString(r.warning(fmt.Sprintf("could not access %s", diag.Dir)))
		sb.WriteString("\n")
	}

	for _, failure := range asm.Failures {
		sb.WriteString(r.RenderError(failure))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// RenderError renders one error line, surfacing the error code when the
// error carries one.
func (r *Renderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		if r.styled {
			return fmt.Sprintf("%s [%s] %s",
				pterm.Error.Prefix.Text,
				pterm.Error.MessageStyle.Sprint(string(code)),
				err.Error())
		}
		return fmt.Sprintf("ERROR [%s] %s", code, err.Error())
	}

	if r.styled {
		return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, ErrorStyle.Render(err.Error()))
	}
	return "ERROR " + err.Error()
}

func (r *Renderer) title(s string) string {
	if r.styled {
		return TitleStyle.Render(s)
	}
	return strings.ToUpper(s)
}

func (r *Renderer) path(s string) string {
	if r.styled {
		return PathStyle.Render(s)
	}
	return s
}

func (r *Renderer) muted(s string) string {
	if r.styled {
		return MutedStyle.Render(s)
	}
	return s
}

func (r *Renderer) warning(s string) string {
	if r.styled {
		return WarningStyle.Render("warning: ") + s
	}
	return "warning: " + s
}

func (r *Renderer) listItem(s string) string {
	if r.styled {
		return ListItemStyle.Render(s)
	}
	return "  " + s
}

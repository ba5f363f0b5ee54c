package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/pdg/internal/core/services/dispatch"
	"github.com/AntonioJCosta/pdg/internal/handlers/ui"
)

// PrintError reports err the way the user should see it. Nothing is printed for a
// missing command (the usage table already was) or for a failed step, whose command
// has written its own output to the inherited streams.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrNoCommand) {
		return
	}
	var failure *dispatch.StepFailure
	if errors.As(err, &failure) {
		return
	}
	fmt.Fprintln(w, ui.ErrorColor(err.Error()))
}

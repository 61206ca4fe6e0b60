package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// StartSpinner shows an in-flight indicator while a request is outstanding
// and returns a stop function. The indicator doubles as the convention that
// the triggering control is busy: commands call the stop function before
// rendering a result, and nothing here is safe to nest.
//
// Outside a terminal (tests, pipes) no spinner is drawn.
func StartSpinner(message string) func() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}

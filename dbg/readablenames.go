package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for optimization runs, so that interleaved debug logs from
// several runs can be told apart at a glance. Names are not unique, they are
// only meant to be easy on the eyes.

func init() {
	// Names are generated per run, so we make them nondeterministic to remind
	// the user that the same name doesn't refer to the same run between
	// processes.
	petname.NonDeterministicMode()
}

func RunName() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}

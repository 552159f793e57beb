package domain

import (
	"strings"
	"unicode"

	"github.com/sufield/sessionify/internal/assert"
)

// BuildCommand joins an argument vector into the single command string of a Service.
//
// Arguments are separated by one space and any argument containing a space is
// wrapped in single quotes. Nothing else is escaped, so an argument that itself
// contains a single quote does not survive a shell re-split.
func BuildCommand(args []string) string {
	var b strings.Builder
	for _, arg := range args {
		if strings.Contains(arg, " ") {
			b.WriteString("'")
			b.WriteString(arg)
			b.WriteString("' ")
			continue
		}
		b.WriteString(arg)
		b.WriteString(" ")
	}
	cmd := strings.TrimRightFunc(b.String(), unicode.IsSpace)
	assert.Invariant(len(args) > 0 || cmd == "", "empty argument vector must yield an empty command")
	return cmd
}

package epio

import "github.com/go-test/deep"

// stateMachine, gpioBank, and irqBank expose only unexported fields, so a
// meaningful full-struct snapshot diff needs deep to look inside them
// rather than silently reporting "equal" on zero exported fields.
func init() {
	deep.CompareUnexportedFields = true
}

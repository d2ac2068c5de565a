package extension

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// stubExtension is a minimal Extension implementation for registry tests.
type stubExtension struct {
	name string
}

func (e stubExtension) Name() string               { return e.name }
func (e stubExtension) Commands() []*cobra.Command { return nil }
func (e stubExtension) MCPTools() []MCPTool        { return nil }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	name := "registry-duplicate"
	Register(stubExtension{name: name})

	assert.Panics(t, func() {
		Register(stubExtension{name: name})
	})
}

func TestRegistry_LookupAndOrder(t *testing.T) {
	first := "registry-order-a"
	second := "registry-order-b"
	Register(stubExtension{name: first})
	Register(stubExtension{name: second})

	assert.Equal(t, first, Get(first).Name())
	assert.Nil(t, Get("registry-missing"))

	// Names preserves registration order
	names := Names()
	var seen []string
	for _, n := range names {
		if n == first || n == second {
			seen = append(seen, n)
		}
	}
	assert.Equal(t, []string{first, second}, seen)
	assert.Len(t, All(), len(names))
}

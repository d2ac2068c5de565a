package document_test

import (
	"context"
	"testing"

	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/document"
	"github.com/jpl-au/docdex/internal/store"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probeExtension records every event it receives.
type probeExtension struct {
	events []extension.Event
}

func (p *probeExtension) Name() string                  { return "events-probe" }
func (p *probeExtension) Commands() []*cobra.Command    { return nil }
func (p *probeExtension) MCPTools() []extension.MCPTool { return nil }

func (p *probeExtension) HandleEvent(_ extension.Context, e extension.Event) error {
	p.events = append(p.events, e)
	return nil
}

func TestService_FiresDocumentEvents(t *testing.T) {
	probe := &probeExtension{}
	extension.Register(probe)

	svc, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	impl, ok := svc.(*document.Service)
	require.True(t, ok)
	impl.SetExtensionContext(extension.NewContext(svc, svc.DB(), nil))

	id, err := svc.Insert(ctx, store.Document{Content: "watched"})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, id))

	require.Len(t, probe.events, 2)
	assert.Equal(t, extension.EventDocumentInsert, probe.events[0].EventType())
	assert.Equal(t, id, probe.events[0].EventDoc())
	assert.Equal(t, extension.EventDocumentRemove, probe.events[1].EventType())
	assert.Equal(t, id, probe.events[1].EventDoc())
}

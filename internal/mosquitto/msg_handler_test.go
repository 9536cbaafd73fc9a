package mosquitto

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triangulator/internal/storage"
)

func newTestHandler() (*MqqtMsgHandler, *storage.Storage) {
	s := storage.NewStorage()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(s, log), s
}

func TestHandleSingleBearing(t *testing.T) {
	h, s := newTestHandler()

	err := h.HandleMsg([]byte(`{"landmark":"beacon_1","bearing_deg":86.5650512}`))
	require.NoError(t, err)

	d, ok := s.Get("beacon_1")
	require.True(t, ok)
	assert.Equal(t, 86.5650512, d.Bearing)
}

func TestHandleSweep(t *testing.T) {
	h, s := newTestHandler()

	err := h.HandleMsg([]byte(`{"readings":[
		{"landmark":"beacon_1","bearing_deg":86.5650512},
		{"landmark":"beacon_2","bearing_deg":-11.5650512},
		{"landmark":"beacon_3","bearing_deg":-75}
	]}`))
	require.NoError(t, err)

	all := s.GetAll()
	assert.Len(t, all, 3)
	assert.Equal(t, -75.0, all["beacon_3"].Bearing)
}

func TestHandleRejectsBadMessages(t *testing.T) {
	h, s := newTestHandler()

	assert.Error(t, h.HandleMsg([]byte(`not json`)))
	assert.ErrorIs(t, h.HandleMsg([]byte(`{}`)), ErrBadReading)
	assert.ErrorIs(t, h.HandleMsg([]byte(`{"readings":[
		{"landmark":"beacon_1","bearing_deg":10},
		{"bearing_deg":20}
	]}`)), ErrBadReading)

	// nothing from the partially bad sweep is stored
	assert.Empty(t, s.GetAll())
}

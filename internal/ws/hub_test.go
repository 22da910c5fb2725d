package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishBroadcastsEvent(t *testing.T) {
	hub := NewHub()

	hub.Publish("category_created", map[string]string{"name": "Filament"})

	select {
	case msg := <-hub.Broadcast:
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(msg, &payload))
		assert.Equal(t, "category_created", payload["type"])
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, "Filament", data["name"])
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}
}

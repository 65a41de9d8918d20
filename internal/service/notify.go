package service

import (
	"encoding/json"

	"go-supplier-orders/internal/ws"
)

// notifyStoreChanged tells connected view clients the store mutated and the
// cache has already been reloaded. A nil hub (tests) skips the broadcast.
func notifyStoreChanged(hub *ws.Hub, action string, detail map[string]interface{}) {
	if hub == nil {
		return
	}
	payload := map[string]interface{}{
		"type":   "store_changed",
		"action": action,
	}
	for k, v := range detail {
		payload[k] = v
	}
	msg, _ := json.Marshal(payload)
	go func() {
		hub.Broadcast <- msg
	}()
}

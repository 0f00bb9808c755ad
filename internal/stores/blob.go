package stores

import (
	"encoding/json"

	"pixlumia/internal/store"
)

// Blob keys, one per persisted piece of state. Each key is suffixed with
// the session id so every browser keeps its own state, the way the
// storefront's local storage did.
const (
	keyProducts = "pixlumia_products:"
	keyCart     = "pixlumia_cart:"
	keyUser     = "pixlumia_user:"
	keyOrders   = "pixlumia_orders:"
	keyStudioBg = "pixlumia_studio_bg:"
	keyCheckout = "pixlumia_checkout:"
	keyAdmin    = "pixlumia_admin:"
)

// loadJSON reads one blob, falling back silently on a missing, unreadable
// or malformed value.
func loadJSON[T any](kv store.KV, key string, fallback func() T) T {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return fallback()
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback()
	}
	return v
}

func saveJSON[T any](kv store.KV, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(key, string(b))
}

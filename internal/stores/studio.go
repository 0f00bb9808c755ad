package stores

import "pixlumia/internal/store"

// StudioStore owns the optional custom studio background image, stored as
// a single string (URL or data URI) rather than a JSON document.
type StudioStore struct{ kv store.KV }

func NewStudioStore(kv store.KV) *StudioStore { return &StudioStore{kv: kv} }

func (s *StudioStore) Background(sid string) string {
	bg, ok, err := s.kv.Get(keyStudioBg + sid)
	if err != nil || !ok {
		return ""
	}
	return bg
}

func (s *StudioStore) SetBackground(sid, bg string) error {
	if bg == "" {
		return s.kv.Remove(keyStudioBg + sid)
	}
	return s.kv.Set(keyStudioBg+sid, bg)
}

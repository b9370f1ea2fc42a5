package content

import "sync/atomic"

// Source supplies the feed to render.
type Source interface {
	Feed() Feed
}

// Store holds the current feed and swaps it atomically on reload.
type Store struct {
	current atomic.Pointer[Feed]
}

// NewStore returns a store seeded with feed.
func NewStore(feed Feed) *Store {
	s := &Store{}
	s.Replace(feed)
	return s
}

// Feed returns a copy of the current feed.
func (s *Store) Feed() Feed {
	if s == nil {
		return Feed{}
	}
	current := s.current.Load()
	if current == nil {
		return Feed{}
	}
	return current.Clone()
}

// Replace swaps in a copy of feed.
func (s *Store) Replace(feed Feed) {
	if s == nil {
		return
	}
	next := feed.Clone()
	s.current.Store(&next)
}

package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FriendSet keeps a user's friends keyed by username, iterating in the
// order they were added.
type FriendSet struct {
	m *orderedmap.OrderedMap[string, *User]
}

func NewFriendSet() *FriendSet {
	return &FriendSet{m: orderedmap.New[string, *User]()}
}

// Add inserts u unless a friend with the same username is already present.
// It reports whether u was inserted.
func (s *FriendSet) Add(u *User) bool {
	if _, ok := s.m.Get(u.Username()); ok {
		return false
	}
	s.m.Set(u.Username(), u)
	return true
}

func (s *FriendSet) Contains(username string) bool {
	_, ok := s.m.Get(username)
	return ok
}

func (s *FriendSet) Len() int {
	return s.m.Len()
}

func (s *FriendSet) List() []*User {
	out := make([]*User, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

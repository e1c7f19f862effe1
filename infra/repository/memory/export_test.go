package memory

// LockCount reports how many account locks the store has allocated.
func (s *Store) LockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}

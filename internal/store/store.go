package store

// Store provides access to all storage repositories.
type Store struct {
	pool   *Pool
	guests *GuestStore
}

func NewStore(pool *Pool) *Store {
	return &Store{
		pool:   pool,
		guests: NewGuestStore(pool),
	}
}

func (s *Store) Guests() *GuestStore {
	return s.guests
}

func (s *Store) Pool() *Pool {
	return s.pool
}

func (s *Store) Close() error {
	return s.pool.Close()
}

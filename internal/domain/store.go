package domain

// Store is the full persisted collection of accounts
type Store struct {
	Users    []Account `json:"users"`    // End-user accounts
	Trainers []Account `json:"trainers"` // Trainer accounts
}

// NewStore returns a store with two empty lists
func NewStore() *Store {
	return &Store{Users: []Account{}, Trainers: []Account{}}
}

// List returns a pointer to the list holding accounts of the given role
func (s *Store) List(role Role) *[]Account {
	if role == RoleTrainer {
		return &s.Trainers
	}
	return &s.Users
}

// IndexByEmail returns the position of the account with this email, or -1
func (s *Store) IndexByEmail(role Role, email string) int {
	for i, a := range *s.List(role) {
		if a.Email == email {
			return i
		}
	}
	return -1
}

// IndexByID returns the position of the account with this id, or -1
func (s *Store) IndexByID(role Role, id int64) int {
	for i, a := range *s.List(role) {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// MaxID returns the largest id across both lists
func (s *Store) MaxID() int64 {
	var max int64
	for _, list := range [][]Account{s.Users, s.Trainers} {
		for _, a := range list {
			if a.ID > max {
				max = a.ID
			}
		}
	}
	return max
}

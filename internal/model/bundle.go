package model

import "time"

// Bundle is a user-defined group of wallet addresses tracked together as one
// portfolio.
type Bundle struct {
	ID        string
	UserID    string
	Name      string
	Addresses []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAddress reports whether the bundle already tracks the address.
func (b *Bundle) HasAddress(address string) bool {
	for _, a := range b.Addresses {
		if a == address {
			return true
		}
	}
	return false
}

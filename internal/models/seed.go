// Package models holds the data shapes shared by picseed components.
package models

// SeedRecord describes one demo account to provision. Password is sent to the
// signup endpoint once and never stored by the tool. The JSON shape matches
// the API's POST /users body.
type SeedRecord struct {
	Handle      string `json:"handle"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Password    string `json:"password"`
}

// Credentials is the POST /auth/login body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials returns the login pair for r.
func (r SeedRecord) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}

// DefaultSeedRecords returns the four built-in demo accounts, in order.
func DefaultSeedRecords() []SeedRecord {
	const password = "ChangeMe123!"
	return []SeedRecord{
		{Handle: "demo", Email: "demo@example.com", DisplayName: "Demo User", Bio: "Hello from PicShare.", Password: password},
		{Handle: "alice", Email: "alice@example.com", DisplayName: "Alice", Bio: "Coffee, photos, and travel.", Password: password},
		{Handle: "bob", Email: "bob@example.com", DisplayName: "Bob", Bio: "Street photography enthusiast.", Password: password},
		{Handle: "cora", Email: "cora@example.com", DisplayName: "Cora", Bio: "Food, friends, and sunsets.", Password: password},
	}
}

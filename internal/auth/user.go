package auth

// User is the account entity. Password always holds the bcrypt hash.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

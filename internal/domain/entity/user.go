package entity

// User represents an admin account able to manage articles.
// PasswordHash holds a one-way bcrypt hash; the plaintext password is never
// stored and the hash is never serialized in API responses.
type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// Clone returns a copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// NewUserInput is the payload accepted when creating a user.
type NewUserInput struct {
	Username string
	Password string
}

// Validate checks the input and returns every invalid field at once.
func (in NewUserInput) Validate() error {
	var errs ValidationErrors
	if in.Username == "" {
		errs = append(errs, ValidationError{Field: "username", Message: "is required"})
	}
	if in.Password == "" {
		errs = append(errs, ValidationError{Field: "password", Message: "is required"})
	}
	return errs.OrNil()
}

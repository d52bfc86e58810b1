package models

// User is a registered account. DNI is the unique key; PasswordDigest is
// the hex-encoded 512-bit digest of the password, never the password
// itself.
type User struct {
	Name           string `json:"name" yaml:"name"`
	DNI            string `json:"dni" yaml:"dni"`
	PasswordDigest string `json:"password" yaml:"password"`
}

// NewUser builds a user from already hashed credentials.
func NewUser(name, dni, passwordDigest string) User {
	return User{Name: name, DNI: dni, PasswordDigest: passwordDigest}
}

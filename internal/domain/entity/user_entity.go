package entity

// User is the aggregate root for the credential domain.
// Username is the natural key; PasswordHash holds a bcrypt digest and must
// never be serialized outward.
type User struct {
	Username     string
	FullName     string
	PasswordHash string
}

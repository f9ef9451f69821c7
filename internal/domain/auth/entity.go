package auth

// SystemUser is a dashboard login account, provisioned out-of-band.
// Disjoint from the employee directory.
type SystemUser struct {
	ID           int64
	Username     string
	PasswordHash string
	DisplayName  *string
}

package models

// User is one registered account. LoginID is the user-chosen unique handle
// used for authentication; ID is the generated opaque identifier used as the
// storage namespace key. PasswordDigest is the hex-encoded SHA-256 of the
// plaintext password (unsalted, kept byte-compatible with the existing
// users document).
type User struct {
	ID             string
	LoginID        string
	PasswordDigest string
}

package driven

// SecretsStore provides deployment secrets. Implementations read a local
// secrets file (and, for the store credentials, an optional key file).
type SecretsStore interface {
	// AdminPassword returns the configured admin password, or "" when the
	// admin surface should stay disabled.
	AdminPassword() string

	// ServiceAccountJSON returns the service-account credential for the
	// document store, either from an inline secrets mapping or from a
	// local key file. Absence of both is an error; the caller treats it
	// as fatal at startup.
	ServiceAccountJSON() ([]byte, error)
}

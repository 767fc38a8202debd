package models

// Identity is a verified caller.
type Identity struct {
	// UID is the opaque caller identifier. It names the caller's namespace
	// in the document store.
	UID string

	// Provider names the verifier that produced the identity
	// (e.g. "firebase", "identitytoolkit", "jwt").
	Provider string
}

package cloud

import "errors"

// ErrFirebaseInit wraps every failure to build the Firebase handle:
// credential decoding, app creation, or client creation.
var ErrFirebaseInit = errors.New("firebase initialization failed")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoCallerInContext means a transactions handler ran without the auth
	// middleware having stored a verified uid.
	ErrNoCallerInContext = errors.New("no verified caller in request context")

	// ErrMalformedBody wraps JSON decoding failures of request bodies.
	ErrMalformedBody = errors.New("malformed request body")
)

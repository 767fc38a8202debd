// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// transactions API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgUnauthorized is returned for a missing, malformed or refused bearer
	// token.
	MsgUnauthorized = "Unauthorized"

	// MsgMissingID is returned when DELETE /api/transactions has no "id"
	// query parameter.
	MsgMissingID = "Missing ID"

	// MsgDeleted acknowledges a successful delete.
	MsgDeleted = "Deleted"

	// MsgInternalServerError replaces 500 bodies when internal errors are
	// hidden from callers.
	MsgInternalServerError = "Internal Server Error"
)

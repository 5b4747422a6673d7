// Package api contains the transport layer against the resume backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     auth, resume CRUD, per-section fetch/write, parse upload,
//     optimization, export, and the job-recommendation endpoints.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the
//     bearer token from a TokenSource, rate-limits outbound requests,
//     and maps response statuses to sentinel errors.
//  3. Schema-checked decoding of section payloads: inbound values are
//     validated against embedded JSON Schemas before they become typed
//     state, so shape drift surfaces as a DecodeError instead of
//     corrupt client state.
//
// # Error Handling
//
// Callers match failures with errors.Is / errors.As: ErrUnavailable,
// ErrUnauthorized, ErrNotFound, *ValidationError, *DecodeError. A
// missing section is ErrNotFound; the section store treats that as
// "no data yet", never as fatal.
//
// All operations accept context.Context and honor cancellation and the
// configured per-request timeout.
package api

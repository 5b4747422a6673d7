// Package cli provides the interactive resume command-line client.
//
// It wires configuration, the persisted session, the HTTP API client and
// an interactive REPL. Typical flow: log in, open a resume, edit and save
// its sections, preview or export the assembled document.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Resume management: list, create, open, rename, delete
//   - Section editing: add, edit, remove entries; save or discard drafts
//   - Preview of the assembled document, PDF and ATS export
//   - Resume upload parsing, optimization against a job description
//   - Job feed: recommendations and scraped postings
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

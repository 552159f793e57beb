// Package app contains the session orchestration use case.
//
// Responsibilities
//   - Generate unique namespace and session names (names.go).
//   - Build the namespace and session documents for one command and serialize
//     them as YAML (service.go, marshal.go).
//   - Submit the namespace, then the session, through a ports.SessionSubmitter
//     and return the configuration id of the launched service.
//
// Architectural notes
//   - Submission is strictly sequential with no retries. A failed namespace
//     submission aborts before the session is sent.
//   - Adapters are injected through ports.SubmitterFactory; the composition
//     root (package sessionify) passes casapi.Factory.
package app

// Package domain contains the policy model for generated sessions.
//
// This package is the CORE of the hexagonal architecture - it defines the
// policy documents registered with the remote configuration service and the
// error taxonomy shared by every layer, with ZERO dependencies on external
// frameworks, SDKs, or infrastructure.
//
// Hexagonal Architecture Boundaries:
//   - Domain NEVER imports from: internal/adapters, internal/ports, pkg/, external SDKs
//   - Domain ONLY imports from: standard library, internal/assert
//   - Domain exposes: value objects, constructors, domain errors
//   - Domain does NOT: perform I/O, serialize documents, call external APIs
//
// Serialization is done by the application layer; the struct tags here define
// the wire shape.
//
// Files and types
// -----------------------
//   - session.go
//   - NamespaceSession, Session, Service, Image, AccessPolicy, Security:
//     the two policy documents submitted per execution request.
//     NewNamespaceSession / NewSession are pure constructors.
//
//   - attestation.go
//   - AttestationMode: closed set of attestation presets with one total
//     mapping to the wire shape (Attestation).
//
//   - command.go
//   - BuildCommand: argument vector to the quoted command string of a Service.
//
//   - errors.go
//   - Sentinel errors for configuration, identity, parse, transport setup,
//     submission and exec failures; SubmissionError carries the reply body.
package domain

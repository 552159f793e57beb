// Package ports defines the inbound and outbound ports (interfaces and types)
// used to decouple the application logic from adapters.
//
// Files and responsibilities
// --------------------------
//   - inbound.go
//   - SessionCreator: the use case driven by the library entry point and CLI.
//   - outbound.go
//   - SessionSubmitter, SubmitterFactory: the session API client and how it is
//     built from the trust configuration.
//   - RandomSource: randomness for generated names, injectable for tests.
//   - ProcessLauncher: the exec boundary.
//   - Each interface includes an "Error Contract" in comments describing
//     sentinel errors returned by implementations.
//   - errors.go
//   - Infrastructure errors owned by the adapter layer.
package ports

// Package adapters contains infrastructure implementations of port interfaces.
//
// This package is the ADAPTER LAYER in hexagonal architecture - it implements
// the port interfaces defined in internal/ports using concrete technologies
// (net/http over mTLS, go-spiffe trust bundles, the exec system call).
//
// Hexagonal Architecture Boundaries:
//   - Adapters implement: internal/ports interfaces
//   - Adapters import from: internal/domain, internal/ports, internal/config, external SDKs
//   - Adapters are instantiated: by the root package sessionify or cmd/sessionify (composition root)
//   - Domain/App layers: NEVER import concrete adapters directly
//
// Outbound Adapters (Driven Adapters)
//
// Example: casapi (outbound/casapi/)
//   - Implements: ports.SessionSubmitter, ports.SubmitterFactory (casapi.Factory)
//   - Technology: HTTPS POST of YAML documents
//   - Purpose: Registers namespace and session policies with the configuration service
//
// Example: httpclient (outbound/httpclient/)
//   - Technology: net/http with a client certificate
//   - Purpose: The mTLS channel used by casapi; trusts only the selected anchor chain
//
// Example: launcher (outbound/launcher/)
//   - Implements: ports.ProcessLauncher
//   - Technology: exec.LookPath + syscall.Exec
//   - Purpose: Replaces the current process with the target command
//
// Example Dependency Flow
//
//	sessionify.GenAndExec (composition root)
//	    ↓ creates
//	app.NewSessionService(casapi.Factory())
//	    ↓ uses interface
//	ports.SessionSubmitter
//	    ↓ implemented by
//	casapi.Client → httpclient.Client
package adapters

// Package casapi is the client of the remote session API.
//
// Each policy document is sent as one POST of its YAML text to
// https://{endpoint}:8081/v1/sessions over mutual TLS. A non-2xx reply is
// returned as a *domain.SubmissionError carrying the reply body verbatim.
// There are no retries.
package casapi

// Package launcher is the process boundary: it turns KEY=VALUE arguments into
// an environment and replaces the current process with the target command,
// handing it the configuration id in SCONE_CONFIG_ID.
package launcher

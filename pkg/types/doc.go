// Package types defines the Store interface, the User and Email records, and
// the standard errors for the agentmem persistence layer.
//
// Callers outside this module obtain a Store from pkg/sqlite and match
// failures with errors.Is against the sentinels declared here.
package types

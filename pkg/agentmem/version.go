// Package agentmem holds build metadata for the agentmem module.
package agentmem

// Version is the agentmem release version.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/agentmem"

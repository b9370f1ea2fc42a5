// Package routepath stores canonical HTTP paths for web modules.
package routepath

const (
	Root   = "/"
	Home   = "/{$}"
	Health = "/up"
)

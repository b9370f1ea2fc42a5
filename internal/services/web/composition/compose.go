// Package composition assembles the web handler from the module registry.
package composition

import (
	"net/http"

	webapp "github.com/louisbranch/studypicks/internal/services/web/app"
	"github.com/louisbranch/studypicks/internal/services/web/modules"
	"github.com/louisbranch/studypicks/internal/services/web/platform/httpx"
)

// ModuleRegistry builds web module sets from composition input.
type ModuleRegistry interface {
	Build(modules.BuildInput) modules.BuildOutput
}

// ComposeInput describes the contracts needed to compose the application mux.
type ComposeInput struct {
	ModuleDependencies modules.Dependencies

	// Middleware replaces the default chain when non-nil.
	Middleware []httpx.Middleware

	Registry ModuleRegistry
}

// DefaultMiddleware returns the request chain applied around every module.
func DefaultMiddleware() []httpx.Middleware {
	return []httpx.Middleware{
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.RequestLog(),
	}
}

// ComposeAppHandler builds the web app handler with the registry's modules.
func ComposeAppHandler(input ComposeInput) (http.Handler, error) {
	registry := input.Registry
	if registry == nil {
		registry = modules.NewRegistry()
	}
	middleware := input.Middleware
	if middleware == nil {
		middleware = DefaultMiddleware()
	}

	built := registry.Build(modules.BuildInput{
		Dependencies: input.ModuleDependencies,
	})

	return webapp.Compose(webapp.ComposeInput{
		Modules:    built.Modules,
		Middleware: middleware,
	})
}

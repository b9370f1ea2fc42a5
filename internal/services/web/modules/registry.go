package modules

import "github.com/louisbranch/studypicks/internal/services/web/modules/advisor"

// BuildInput carries the inputs a registry needs to produce modules.
type BuildInput struct {
	Dependencies Dependencies
}

// BuildOutput lists the modules mounted by the web host.
type BuildOutput struct {
	Modules []Module
}

// Registry builds the module set for the web host.
type Registry struct{}

// NewRegistry returns the default registry.
func NewRegistry() Registry {
	return Registry{}
}

// Build returns the default modules for input.
func (Registry) Build(input BuildInput) BuildOutput {
	return BuildOutput{Modules: DefaultModules(input.Dependencies)}
}

// DefaultModules returns the stable web modules.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		advisor.New(deps.Feed, deps.Lang),
	}
}

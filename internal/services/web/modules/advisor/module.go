// Package advisor serves the study-app recommendation page.
package advisor

import (
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/studypicks/internal/content"
	module "github.com/louisbranch/studypicks/internal/services/web/module"
	"github.com/louisbranch/studypicks/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// Module owns the root routes: the page, health, and the not-found fallback.
type Module struct {
	source content.Source
	lang   language.Tag
	id     string
	prefix string
}

// New returns an advisor module rendering the feed from source, with lang used
// when a request names no supported language.
func New(source content.Source, lang language.Tag) Module {
	return Module{
		source: source,
		lang:   lang,
		id:     "advisor",
		prefix: routepath.Root,
	}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	id := strings.TrimSpace(m.id)
	if id == "" {
		return "advisor"
	}
	return id
}

// Mount wires advisor routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	if m.source == nil {
		return module.Mount{}, errors.New("feed source is required")
	}
	registerRoutes(mux, newHandlers(m.source, m.lang))
	prefix := strings.TrimSpace(m.prefix)
	if prefix == "" {
		prefix = routepath.Root
	}
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}

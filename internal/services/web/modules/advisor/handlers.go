package advisor

import (
	"net/http"

	"github.com/louisbranch/studypicks/internal/content"
	"github.com/louisbranch/studypicks/internal/page"
	apperrors "github.com/louisbranch/studypicks/internal/services/web/platform/errors"
	"github.com/louisbranch/studypicks/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/studypicks/internal/services/web/platform/i18n"
	"github.com/louisbranch/studypicks/internal/services/web/platform/pagerender"
	"github.com/louisbranch/studypicks/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/studypicks/internal/services/web/templates"
	"golang.org/x/text/language"
)

var errPageNotFound = apperrors.E(apperrors.KindNotFound, "page not found")

type handlers struct {
	source content.Source
	lang   language.Tag
}

func newHandlers(source content.Source, lang language.Tag) handlers {
	return handlers{source: source, lang: lang}
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	getOnly := httpx.RequireMethod(http.MethodGet)
	mux.Handle(routepath.Home, getOnly(http.HandlerFunc(h.handleHome)))
	mux.Handle(routepath.Health, getOnly(http.HandlerFunc(h.handleHealth)))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	if _, err := webi18n.QueryTag(r); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "invalid lang parameter"))
		return
	}
	tag := webi18n.ResolveTag(r, h.lang)
	p := page.Build(h.source.Feed(), webi18n.Page(tag))
	pagerender.WritePage(w, r, http.StatusOK, p)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	tag := webi18n.ResolveTag(r, h.lang)
	pagerender.WriteComponent(w, r, apperrors.HTTPStatus(errPageNotFound), webtemplates.NotFound(tag.String(), routepath.Root))
}

// Package pagerender centralizes page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/studypicks/internal/page"
	"github.com/louisbranch/studypicks/internal/platform/requestctx"
	"github.com/louisbranch/studypicks/internal/services/web/platform/httpx"
	"github.com/louisbranch/studypicks/internal/services/web/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/studypicks/internal/services/web/platform/pagerender"

// Render writes the full advisor document for p into w.
func Render(ctx context.Context, w io.Writer, p page.Page) error {
	attrs := []attribute.KeyValue{
		attribute.String("page.lang", p.Lang),
		attribute.Int("page.contenders", len(p.Contenders.Cards)),
		attribute.Int("page.subjects", len(p.Subjects.Cards)),
	}
	if requestID := requestctx.RequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "pagerender.Render", trace.WithAttributes(attrs...))
	defer span.End()

	if err := templates.Document(p).Render(ctx, w); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render page")
		return err
	}
	return nil
}

// WritePage renders p before touching the response so failures still get a
// clean error status.
func WritePage(w http.ResponseWriter, r *http.Request, statusCode int, p page.Page) {
	if w == nil {
		return
	}
	var buf bytes.Buffer
	if err := Render(httpx.RequestContext(r), &buf, p); err != nil {
		log.Printf("render page path=%s err=%v", requestPath(r), err)
		httpx.WriteError(w, err)
		return
	}
	write(w, r, statusCode, buf.Bytes())
}

// WriteComponent renders an arbitrary document component.
func WriteComponent(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) {
	if w == nil {
		return
	}
	if component == nil {
		component = templ.NopComponent
	}
	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		log.Printf("render component path=%s err=%v", requestPath(r), err)
		httpx.WriteError(w, err)
		return
	}
	write(w, r, statusCode, buf.Bytes())
}

func write(w http.ResponseWriter, r *http.Request, statusCode int, body []byte) {
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}

package handler

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
	"github.com/elchananT/personal-coach-demo-website/internal/web"
)

// legalTitles is the allowlist of legal document types linked from the footer.
// Only these values may be requested.
var legalTitles = map[string]string{
	"privacy": "Privacy Policy",
	"terms":   "Terms of Service",
	"cookies": "Cookie Policy",
	"refund":  "Refund Policy",
}

// LegalHandler serves the legal documents as Markdown (API) and as HTML pages.
type LegalHandler struct {
	docs     fs.FS
	content  *model.SiteContent
	renderer *web.Renderer
	md       goldmark.Markdown
	now      func() time.Time
}

// NewLegalHandler creates a LegalHandler reading <type>.md files from docs.
func NewLegalHandler(docs fs.FS, c *model.SiteContent, r *web.Renderer) *LegalHandler {
	return &LegalHandler{docs: docs, content: c, renderer: r, md: goldmark.New(), now: time.Now}
}

// read validates the requested type and returns the document source.
// The returned status is non-zero when the request must be rejected.
func (h *LegalHandler) read(r *http.Request) (string, []byte, int) {
	docType := r.PathValue("type")

	// Reject any traversal characters before the allowlist check.
	if strings.Contains(docType, "/") || strings.Contains(docType, "\\") || strings.Contains(docType, "..") {
		return "", nil, http.StatusBadRequest
	}
	if _, ok := legalTitles[docType]; !ok {
		return "", nil, http.StatusNotFound
	}

	src, err := fs.ReadFile(h.docs, docType+".md")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, http.StatusNotFound
		}
		slog.ErrorContext(r.Context(), "read legal document failed", "type", docType, "error", err)
		return "", nil, http.StatusInternalServerError
	}
	return docType, src, 0
}

// Markdown handles GET /api/legal/{type}.
func (h *LegalHandler) Markdown(w http.ResponseWriter, r *http.Request) {
	_, src, status := h.read(r)
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(src)
}

// Page handles GET /legal/{type}.
func (h *LegalHandler) Page(w http.ResponseWriter, r *http.Request) {
	docType, src, status := h.read(r)
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	// goldmark drops raw HTML unless WithUnsafe is set, so the output is safe to embed.
	var body bytes.Buffer
	if err := h.md.Convert(src, &body); err != nil {
		slog.ErrorContext(r.Context(), "render legal document failed", "type", docType, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := web.PageData{
		Content: h.content,
		Meta: model.Meta{
			Title:       legalTitles[docType] + " | " + h.content.Brand.Name,
			Description: h.content.Brand.Tagline,
		},
		Path: r.URL.Path,
		Year: h.now().Year(),
		Body: template.HTML(body.String()),
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, web.PageLegal, data); err != nil {
		slog.ErrorContext(r.Context(), "render page failed", "page", web.PageLegal, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

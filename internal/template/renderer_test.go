package template

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func writeTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	layouts := filepath.Join(dir, "layouts")
	pages := filepath.Join(dir, "pages")
	if err := os.MkdirAll(layouts, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(pages, 0o755); err != nil {
		t.Fatal(err)
	}

	base := `<!DOCTYPE html><html><head><title>{% block title %}Portal{% endblock %}</title></head>` +
		`<body>{% block content %}{% endblock %}</body></html>`
	if err := os.WriteFile(filepath.Join(layouts, "base.pongo2"), []byte(base), 0o644); err != nil {
		t.Fatal(err)
	}

	page := `{% extends "layouts/base.pongo2" %}{% block title %}Users{% endblock %}` +
		`{% block content %}<h1>{{ heading }}</h1>{% endblock %}`
	if err := os.WriteFile(filepath.Join(pages, "users.pongo2"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRendererRendersPage(t *testing.T) {
	dir := writeTemplates(t)
	r, err := NewRenderer(config.TemplatesConfig{Dir: dir})
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	defer r.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/dashboard/users", nil)

	r.HTML(c, http.StatusOK, "pages/users.pongo2", pongo2.Context{"heading": "Managed Users"})

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	body := w.Body.String()
	if !containsAll(body, "<title>Users</title>", "<h1>Managed Users</h1>") {
		t.Fatalf("unexpected body: %s", body)
	}
	if err := ValidateTagBalance(body); err != nil {
		t.Fatalf("rendered page has unbalanced tags: %v", err)
	}
}

func TestRendererMissingTemplateIs500(t *testing.T) {
	dir := writeTemplates(t)
	r, err := NewRenderer(config.TemplatesConfig{Dir: dir})
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	defer r.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/dashboard", nil)

	r.HTML(c, http.StatusOK, "pages/missing.pongo2", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestValidateTagBalance(t *testing.T) {
	if err := ValidateTagBalance("<div><p>ok</p></div>"); err != nil {
		t.Fatalf("valid html rejected: %v", err)
	}
	if err := ValidateTagBalance("<div><p>bad</div>"); err == nil {
		t.Fatal("mismatched tags accepted")
	}
	if err := ValidateTagBalance("<div><br><input></div>"); err != nil {
		t.Fatalf("void elements rejected: %v", err)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"krushnagate.dev/portfolio/internal/config"
	"krushnagate.dev/portfolio/internal/contact"
	"krushnagate.dev/portfolio/internal/content"
)

var testClock = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// newTestApp builds an app over the repository's templates, assets and
// locales with templates reparsed on every request.
func newTestApp(t *testing.T, mutate func(*config.Config)) *app {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Server.Dev = true
	cfg.Paths.Templates = "../../templates"
	cfg.Paths.Public = "../../public"
	cfg.Paths.Locales = "../../locales"
	cfg.Content.File = ""
	if mutate != nil {
		mutate(cfg)
	}
	a, err := newApp(cfg, zap.NewNop())
	require.NoError(t, err)
	a.now = func() time.Time { return testClock }
	return a
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	return doc
}

// session loads the page once and returns its cookies and CSRF token.
func session(t *testing.T, h http.Handler) ([]*http.Cookie, string) {
	t.Helper()
	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	token := parse(t, rec).Find(`input[name="csrf_token"]`).AttrOr("value", "")
	require.NotEmpty(t, token)
	return rec.Result().Cookies(), token
}

func postContact(cookies []*http.Cookie, form url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestHealthzOK(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))
}

func TestHomeRendersPage(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	doc := parse(t, rec)
	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "Krushna Gate | Software Engineer (Backend Developer)", doc.Find("title").Text())

	links := doc.Find(".desktop-nav a")
	require.Equal(t, 5, links.Length())
	for _, id := range content.Sections {
		require.Equal(t, 1, doc.Find("section#"+id).Length(), "section %s", id)
	}
	require.Equal(t, 0, doc.Find("#mobile-menu").Length())
	require.Equal(t, "© 2025 Krushna Gate. All rights reserved.", strings.TrimSpace(doc.Find("footer p").Text()))

	var person map[string]any
	raw := doc.Find(`script[type="application/ld+json"]`).First().Text()
	require.NoError(t, json.Unmarshal([]byte(raw), &person))
	require.Equal(t, "Person", person["@type"])
	require.Equal(t, "Krushna Gate", person["name"])
}

func TestHomeMenuQueryFallback(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/?menu=open", nil))
	doc := parse(t, rec)
	require.Equal(t, 5, doc.Find("#mobile-menu a").Length())
	require.Equal(t, "/?menu=closed", doc.Find(".menu-toggle").AttrOr("href", ""))

	rec = do(t, srv, httptest.NewRequest(http.MethodGet, "/?menu=bogus", nil))
	require.Equal(t, 0, parse(t, rec).Find("#mobile-menu").Length())
}

func TestNavFragmentTogglesMenu(t *testing.T) {
	srv := newTestApp(t, nil).routes()

	req := httptest.NewRequest(http.MethodGet, "/fragments/nav?menu=open", nil)
	req.Header.Set("HX-Request", "true")
	rec := do(t, srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, `<nav id="site-nav"`), body)
	require.NotContains(t, body, "<html")
	doc := parse(t, rec)
	require.Equal(t, "open", doc.Find("#site-nav").AttrOr("data-menu-state", ""))
	require.Equal(t, 5, doc.Find("#mobile-menu a").Length())

	req = httptest.NewRequest(http.MethodGet, "/fragments/nav?menu=closed", nil)
	req.Header.Set("HX-Request", "true")
	doc = parse(t, do(t, srv, req))
	require.Equal(t, 0, doc.Find("#mobile-menu").Length())
	require.Equal(t, "bars-3", doc.Find(".menu-toggle").AttrOr("data-icon", ""))

	// without htmx the fragment URL lands on the full page
	rec = do(t, srv, httptest.NewRequest(http.MethodGet, "/fragments/nav?menu=open", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/?menu=open", rec.Header().Get("Location"))
}

func TestContactRequiresCSRF(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	form := url.Values{"name": {"Jane"}, "email": {"jane@example.com"}, "message": {"Hello"}}
	rec := do(t, srv, postContact(nil, form, false))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestContactHTMXSuccess(t *testing.T) {
	a := newTestApp(t, nil)
	srv := a.routes()
	cookies, token := session(t, srv)

	form := url.Values{
		"name":       {"Jane"},
		"email":      {"jane@example.com"},
		"message":    {"<b>Hello</b> there"},
		"csrf_token": {token},
	}
	rec := do(t, srv, postContact(cookies, form, true))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	require.Equal(t, "success", doc.Find("#contact-status").AttrOr("data-tone", ""))
	require.Contains(t, doc.Find("#contact-status").Text(), "Jun 1, 2025")
	require.Empty(t, doc.Find("input#name").AttrOr("value", ""), "form resets after success")

	saved := a.outbox.(*contact.MemoryOutbox).List()
	require.Len(t, saved, 1)
	require.Equal(t, "Hello there", saved[0].Message)
	require.Equal(t, testClock, saved[0].ReceivedAt)
}

func TestContactValidationErrors(t *testing.T) {
	a := newTestApp(t, nil)
	srv := a.routes()
	cookies, token := session(t, srv)

	form := url.Values{"name": {"Jane"}, "email": {""}, "message": {"Hi"}, "csrf_token": {token}}
	rec := do(t, srv, postContact(cookies, form, true))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	doc := parse(t, rec)
	require.Equal(t, "Please enter your email address.", doc.Find(`[data-field-error="email"]`).Text())
	require.Equal(t, "Jane", doc.Find("input#name").AttrOr("value", ""))
	require.Empty(t, a.outbox.(*contact.MemoryOutbox).List())

	// plain posts get the whole page back with the same errors
	rec = do(t, srv, postContact(cookies, form, false))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	doc = parse(t, rec)
	require.Equal(t, 1, doc.Find("#site-nav").Length())
	require.Equal(t, 1, doc.Find(`[data-field-error="email"]`).Length())
}

func TestContactMarkupOnlyMessageIsMissing(t *testing.T) {
	a := newTestApp(t, nil)
	srv := a.routes()
	cookies, token := session(t, srv)

	form := url.Values{
		"name":       {"Jane"},
		"email":      {"jane@example.com"},
		"message":    {"<script>x</script>"},
		"csrf_token": {token},
	}
	rec := do(t, srv, postContact(cookies, form, true))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	doc := parse(t, rec)
	require.Equal(t, 1, doc.Find(`[data-field-error="message"]`).Length())
	require.Empty(t, a.outbox.(*contact.MemoryOutbox).List())
}

func TestContactPlainPostRedirects(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	cookies, token := session(t, srv)
	form := url.Values{"name": {"Jane"}, "email": {"jane@example.com"}, "message": {"Hi"}, "csrf_token": {token}}
	rec := do(t, srv, postContact(cookies, form, false))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/?sent=1#contact-form", rec.Header().Get("Location"))

	doc := parse(t, do(t, srv, httptest.NewRequest(http.MethodGet, "/?sent=1", nil)))
	require.Equal(t, "success", doc.Find("#contact-status").AttrOr("data-tone", ""))
}

type failingOutbox struct{}

func (failingOutbox) Save(context.Context, contact.Submission) error {
	return errors.New("disk full")
}

func TestContactSaveFailure(t *testing.T) {
	a := newTestApp(t, nil)
	a.outbox = failingOutbox{}
	srv := a.routes()
	cookies, token := session(t, srv)
	form := url.Values{"name": {"Jane"}, "email": {"jane@example.com"}, "message": {"Hi"}, "csrf_token": {token}}
	rec := do(t, srv, postContact(cookies, form, true))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	doc := parse(t, rec)
	require.Equal(t, "error", doc.Find("#contact-status").AttrOr("data-tone", ""))
	require.Equal(t, "Hi", doc.Find("textarea#message").Text())
}

func TestJapaneseChrome(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ja,en;q=0.5")
	doc := parse(t, do(t, srv, req))
	require.Equal(t, "ja", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "お問い合わせ", doc.Find("#contact h2").Text())
	// nav labels are content, not chrome
	require.Equal(t, "Home", doc.Find(".desktop-nav a").First().Text())
}

func writeContent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDanglingAnchorStillRenders(t *testing.T) {
	a := newTestApp(t, nil)
	a.portfolio.Nav = []content.NavItem{{Label: "Home", Anchor: "home"}, {Label: "Blog", Anchor: "blog"}}
	rec := do(t, a.routes(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, parse(t, rec).Find(".desktop-nav a").Length())

	dangling, links, err := a.check("en")
	require.NoError(t, err)
	require.Equal(t, []string{"blog"}, dangling)
	require.Positive(t, links)
}

func TestMissingBioKeepsProfileOverride(t *testing.T) {
	file := writeContent(t, "profile:\n  name: Jane Doe\n  bio_file: gone.md\n")
	a := newTestApp(t, func(c *config.Config) { c.Content.File = file })
	doc := parse(t, do(t, a.routes(), httptest.NewRequest(http.MethodGet, "/", nil)))
	require.Contains(t, doc.Find("#home h1").Text(), "Jane Doe")
	require.Equal(t, "© 2025 Jane Doe. All rights reserved.", strings.TrimSpace(doc.Find("footer p").Text()))
}

func TestFixedContentOverrideFailsStartup(t *testing.T) {
	file := writeContent(t, "skills: [Go]\n")
	cfg := config.NewConfig()
	cfg.Paths.Templates = "../../templates"
	cfg.Paths.Locales = "../../locales"
	cfg.Content.File = file
	_, err := newApp(cfg, zap.NewNop())
	require.ErrorIs(t, err, content.ErrFixedContent)
}

func TestCheckPassesForDefaultContent(t *testing.T) {
	a := newTestApp(t, nil)
	dangling, _, err := a.check("en")
	require.NoError(t, err)
	require.Empty(t, dangling)
}

func TestExportWritesBothMenuStates(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) { c.Server.Dev = false })
	out := t.TempDir()
	written, err := a.export(out, "en")
	require.NoError(t, err)
	require.Contains(t, written, filepath.Join(out, "index.html"))
	require.Contains(t, written, filepath.Join(out, "menu.html"))
	require.FileExists(t, filepath.Join(out, "assets", "css", "site.css"))
	require.FileExists(t, filepath.Join(out, "assets", "js", "site.js"))

	readDoc := func(name string) *goquery.Document {
		f, err := os.Open(filepath.Join(out, name))
		require.NoError(t, err)
		defer f.Close()
		doc, err := goquery.NewDocumentFromReader(f)
		require.NoError(t, err)
		return doc
	}
	index := readDoc("index.html")
	require.Equal(t, "/menu.html", index.Find(".menu-toggle").AttrOr("href", ""))
	require.Equal(t, 0, index.Find("#site-nav [hx-get]").Length())
	form := index.Find("#contact-form")
	require.Equal(t, 1, form.Length())
	require.Equal(t, 0, index.Find("form[action], [hx-post], input[name=csrf_token]").Length())
	_, disabled := form.Find(`button[type="submit"]`).Attr("disabled")
	require.True(t, disabled)
	menu := readDoc("menu.html")
	require.Equal(t, "/", menu.Find(".menu-toggle").AttrOr("href", ""))
	require.Equal(t, 5, menu.Find("#mobile-menu a").Length())
}

func TestSiteScriptCommitsMountStylesBeforePlaying(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/assets/js/site.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	js := rec.Body.String()
	reflow := strings.Index(js, "getBoundingClientRect()")
	require.NotEqual(t, -1, reflow)
	require.Less(t, reflow, strings.Index(js, "mount.forEach(play)"))
}

func TestCheckCommand(t *testing.T) {
	t.Setenv("PORT", "")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
paths:
  templates: ../../templates
  public: ../../public
  locales: ../../locales
content:
  file: ""
`), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"check", "--config", cfgPath})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "ok: ")
}

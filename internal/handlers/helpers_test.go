package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"dishpoll/internal/service"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Stripped-down stand-ins for the real page templates, so handler tests
// don't depend on the templates/ directory.
const testPageTemplates = `
{{define "index.html"}}home|{{with .dish}}{{.Name}}:{{.Votes}}{{end}}|{{range .flashes}}[{{.}}]{{end}}{{end}}
{{define "menu.html"}}menu|{{with .dish}}{{.Name}}:{{printf "%.2f" .Cost}}{{end}}|{{range .flashes}}[{{.}}]{{end}}{{end}}
{{define "poll.html"}}poll|{{range .dishes}}{{.Name}}:{{.Votes}};{{end}}|{{range .flashes}}[{{.}}]{{end}}{{end}}
{{define "order_confirmation.html"}}confirmation|{{with .order}}{{.ID}}:{{.Quantity}}:{{printf "%.2f" .TotalCost}}:{{.DeliveryAddress}}{{end}}|{{range .flashes}}[{{.}}]{{end}}{{end}}
{{define "login.html"}}login|{{range .flashes}}[{{.}}]{{end}}{{end}}
{{define "signup.html"}}signup|{{range .flashes}}[{{.}}]{{end}}{{end}}
{{define "activity.html"}}activity|{{range .events}}{{.Type}};{{end}}|{{range .flashes}}[{{.}}]{{end}}{{end}}
{{define "error.html"}}error|{{.message}}{{end}}
`

// newTestRouter wires a full router over the given service aggregate with an
// in-test cookie session store and templates.
func newTestRouter(t *testing.T, s *service.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(s, cookie.NewStore([]byte("test-secret")), nil)
	r := h.InitRoutes()
	r.SetHTMLTemplate(template.Must(template.New("pages").Parse(testPageTemplates)))
	return r
}

// doGet performs a GET carrying the given cookies.
func doGet(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

// doPostForm performs a form-encoded POST carrying the given cookies.
func doPostForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

// mergeCookies layers newly set cookies over the jar, replacing by name.
func mergeCookies(jar []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	fresh := w.Result().Cookies()
	out := make([]*http.Cookie, 0, len(jar)+len(fresh))
	for _, c := range jar {
		replaced := false
		for _, n := range fresh {
			if n.Name == c.Name {
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, c)
		}
	}
	return append(out, fresh...)
}

func wantRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d (body=%s)", w.Code, http.StatusSeeOther, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("redirect location: got %q, want %q", got, location)
	}
}

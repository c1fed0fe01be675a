package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/signal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type harness struct {
	t        *testing.T
	engine   *gin.Engine
	sessions *session.Store
	cookie   *http.Cookie
}

func newHarness(t *testing.T, site *content.Site) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := session.NewStore(time.Hour, logger)
	srv, err := New(site, sessions, logger)
	require.NoError(t, err)
	return &harness{t: t, engine: srv.Engine(), sessions: sessions}
}

func (h *harness) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	h.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")
	if h.cookie != nil {
		req.AddCookie(h.cookie)
	}

	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			h.cookie = c
		}
	}
	return w
}

func (h *harness) scroll(y string) *httptest.ResponseRecorder {
	return h.do(http.MethodPost, "/events/scroll", url.Values{"y": {y}})
}

func (h *harness) state() (menu, scrolled, modal bool) {
	h.t.Helper()
	require.NotNil(h.t, h.cookie)
	s := h.sessions.Acquire(h.cookie.Value).Snapshot()
	return s.MenuOpen, s.Scrolled, s.ModalOpen
}

func TestIndexRendersPage(t *testing.T) {
	h := newHarness(t, content.Default())
	w := h.do(http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<nav id="site-nav" class="site-nav">`)
	assert.Contains(t, body, `<div id="projects-modal" class="modal-slot"></div>`)
	assert.Contains(t, body, `hx-post="/signals/open-projects-modal"`)
	assert.Contains(t, body, `https://mail.google.com/mail/?view=cm&amp;fs=1&amp;to=sabianpriya27%40gmail.com`)
	assert.Contains(t, body, `referrerpolicy="no-referrer"`)
	assert.Contains(t, body, `onsubmit="event.preventDefault()"`)
	assert.Contains(t, body, `--w: 94%`)
	assert.NotContains(t, body, "hx-swap-oob")

	require.NotNil(t, h.cookie)
	assert.True(t, h.cookie.HttpOnly)
	assert.True(t, session.ValidID(h.cookie.Value))
}

func TestScenarioOverHTTP(t *testing.T) {
	h := newHarness(t, content.Default())
	h.do(http.MethodGet, "/", nil)

	menu, scrolled, modal := h.state()
	assert.False(t, menu)
	assert.False(t, scrolled)
	assert.False(t, modal)

	w := h.scroll("100")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `site-nav--compact`)
	assert.Contains(t, w.Body.String(), `hx-swap-oob="true"`)
	_, scrolled, _ = h.state()
	assert.True(t, scrolled)

	w = h.scroll("0")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `site-nav--compact`)
	_, scrolled, _ = h.state()
	assert.False(t, scrolled)

	w = h.do(http.MethodPost, "/signals/open-projects-modal", url.Values{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="projects-modal" class="modal" role="dialog" aria-modal="true" hx-swap-oob="true"`)
	_, _, modal = h.state()
	assert.True(t, modal)

	w = h.do(http.MethodPost, "/modal/close", url.Values{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<div id="projects-modal" class="modal-slot"></div>`)
	_, _, modal = h.state()
	assert.False(t, modal)
}

func TestRedundantScrollAnswersNoContent(t *testing.T) {
	h := newHarness(t, content.Default())
	h.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusNoContent, h.scroll("10").Code)
	assert.Equal(t, http.StatusOK, h.scroll("60").Code)
	w := h.scroll("400")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestScrollRejectsBadOffset(t *testing.T) {
	h := newHarness(t, content.Default())
	h.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusBadRequest, h.scroll("far").Code)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/events/scroll", url.Values{}).Code)
}

func TestRepeatedOpenSignalIsIdempotent(t *testing.T) {
	h := newHarness(t, content.Default())
	h.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, h.do(http.MethodPost, "/signals/open-projects-modal", url.Values{}).Code)
	assert.Equal(t, http.StatusNoContent, h.do(http.MethodPost, "/signals/open-projects-modal", url.Values{}).Code)
	_, _, modal := h.state()
	assert.True(t, modal)
}

func TestUnknownSignalAndSection(t *testing.T) {
	h := newHarness(t, content.Default())
	h.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusNotFound, h.do(http.MethodPost, "/signals/close-projects-modal", url.Values{}).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodPost, "/nav/follow/blog", url.Values{}).Code)
}

func TestMenuClosesWhenLinkFollowed(t *testing.T) {
	h := newHarness(t, content.Default())
	h.do(http.MethodGet, "/", nil)

	w := h.do(http.MethodPost, "/nav/menu", url.Values{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `site-nav__mobile`)
	assert.NotContains(t, w.Body.String(), "hx-swap-oob")
	menu, _, _ := h.state()
	require.True(t, menu)

	w = h.do(http.MethodPost, "/nav/follow/skills", url.Values{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `site-nav__mobile`)
	assert.Contains(t, w.Body.String(), `hx-swap-oob="true"`)
	menu, _, _ = h.state()
	assert.False(t, menu)

	assert.Equal(t, http.StatusNoContent, h.do(http.MethodPost, "/nav/follow/work", url.Values{}).Code)
}

func TestCloseWhenAlreadyClosed(t *testing.T) {
	h := newHarness(t, content.Default())
	h.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusNoContent, h.do(http.MethodPost, "/modal/close", url.Values{}).Code)
}

func TestReloadResetsViewState(t *testing.T) {
	h := newHarness(t, content.Default())
	h.do(http.MethodGet, "/", nil)
	h.do(http.MethodPost, "/signals/open-projects-modal", url.Values{})
	h.do(http.MethodPost, "/nav/menu", url.Values{})
	h.scroll("200")

	w := h.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `role="dialog"`)

	menu, scrolled, modal := h.state()
	assert.False(t, menu)
	assert.False(t, scrolled)
	assert.False(t, modal)
	assert.Equal(t, 1, h.sessions.Len())

	page := h.sessions.Acquire(h.cookie.Value)
	assert.Equal(t, 1, page.Signals().Len(signal.OpenProjectsModal))
}

func TestVisitorsDoNotShareState(t *testing.T) {
	site := content.Default()
	alice := newHarness(t, site)
	alice.do(http.MethodGet, "/", nil)

	bob := &harness{t: t, engine: alice.engine, sessions: alice.sessions}
	bob.do(http.MethodGet, "/", nil)
	require.NotEqual(t, alice.cookie.Value, bob.cookie.Value)

	alice.do(http.MethodPost, "/signals/open-projects-modal", url.Values{})

	_, _, aliceModal := alice.state()
	_, _, bobModal := bob.state()
	assert.True(t, aliceModal)
	assert.False(t, bobModal)
}

func TestFragmentWithoutSessionCreatesOne(t *testing.T) {
	h := newHarness(t, content.Default())
	w := h.do(http.MethodPost, "/nav/menu", url.Values{})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, h.cookie)
	menu, _, _ := h.state()
	assert.True(t, menu)
}

func TestInvalidSessionCookieIsReplaced(t *testing.T) {
	h := newHarness(t, content.Default())
	h.cookie = &http.Cookie{Name: sessionCookie, Value: "forged"}
	h.do(http.MethodGet, "/", nil)
	assert.True(t, session.ValidID(h.cookie.Value))
}

func TestHealthzAndStatic(t *testing.T) {
	h := newHarness(t, content.Default())

	w := h.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = h.do(http.MethodGet, "/static/site.css", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".site-nav--compact")

	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/admin/login", nil).Code)
}

func TestEmptyProjectList(t *testing.T) {
	site := content.Default()
	site.Projects = nil
	h := newHarness(t, site)

	w := h.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "data-project-id")
}

func TestIconUnknownRendersNothing(t *testing.T) {
	assert.Empty(t, string(icon("rocket")))
	assert.Contains(t, string(icon("globe")), "<svg")
}

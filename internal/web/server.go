// Package web serves the portfolio page and the HTMX endpoints that carry
// browser input events to the visitor's page state.
package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/signal"
	"github.com/Zachkp/portfolio/internal/viewstate"
)

// Server renders the portfolio for every visitor session.
type Server struct {
	site     *content.Site
	sessions *session.Store
	tmpl     *template.Template
	logger   *slog.Logger
	now      func() time.Time
}

// view is the data every template receives.
type view struct {
	Site     *content.Site
	State    viewstate.State
	Sections []viewstate.Section
	Year     int
	OOB      bool
}

// New parses the embedded templates and returns a server for site.
func New(site *content.Site, sessions *session.Store, logger *slog.Logger) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		site:     site,
		sessions: sessions,
		tmpl:     tmpl,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Engine builds the gin engine with every route registered.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	r.SetHTMLTemplate(s.tmpl)

	r.StaticFS("/static", http.FS(staticFiles()))
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	page := r.Group("/", sessionMiddleware())
	page.GET("/", s.handleIndex)
	page.POST("/nav/menu", s.handleToggleMenu)
	page.POST("/nav/follow/:section", s.handleFollowLink)
	page.POST("/events/scroll", s.handleScroll)
	page.POST("/signals/:name", s.handleSignal)
	page.POST("/modal/close", s.handleCloseModal)

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})
	return r
}

func (s *Server) view(state viewstate.State) view {
	return view{
		Site:     s.site,
		State:    state,
		Sections: viewstate.Sections(),
		Year:     s.now().Year(),
	}
}

// handleIndex renders the whole page on a freshly mounted root, so every load
// starts with the menu closed, the page unscrolled and the modal hidden.
func (s *Server) handleIndex(c *gin.Context) {
	page := s.sessions.Remount(sessionID(c))
	c.HTML(http.StatusOK, "index.html", s.view(page.Snapshot()))
}

func (s *Server) handleToggleMenu(c *gin.Context) {
	page := s.sessions.Acquire(sessionID(c))
	page.ToggleMenu()
	s.respond(c, page, viewstate.RegionNav)
}

func (s *Server) handleFollowLink(c *gin.Context) {
	section, ok := viewstate.ParseSection(c.Param("section"))
	if !ok {
		c.String(http.StatusNotFound, "unknown section")
		return
	}
	page := s.sessions.Acquire(sessionID(c))
	page.FollowLink(section)
	s.respond(c, page, "")
}

type scrollEvent struct {
	Y *float64 `form:"y" binding:"required"`
}

func (s *Server) handleScroll(c *gin.Context) {
	var ev scrollEvent
	if err := c.ShouldBind(&ev); err != nil {
		c.String(http.StatusBadRequest, "invalid scroll offset")
		return
	}
	page := s.sessions.Acquire(sessionID(c))
	page.Scroll(*ev.Y)
	s.respond(c, page, "")
}

// handleSignal is the emit side of the page's signal channel. The caller
// needs no handle on the root component; the root's own subscription decides
// what changes.
func (s *Server) handleSignal(c *gin.Context) {
	name := signal.Name(c.Param("name"))
	if !signal.Known(name) {
		c.String(http.StatusNotFound, "unknown signal")
		return
	}
	page := s.sessions.Acquire(sessionID(c))
	page.Signals().Emit(name)
	s.respond(c, page, "")
}

func (s *Server) handleCloseModal(c *gin.Context) {
	page := s.sessions.Acquire(sessionID(c))
	page.CloseModal()
	s.respond(c, page, viewstate.RegionModal)
}

// respond renders the regions the request changed. primary is the region the
// triggering element swaps itself; every other region goes out of band. With
// nothing changed the answer is 204 and the browser keeps its DOM.
func (s *Server) respond(c *gin.Context, page *viewstate.Page, primary viewstate.Region) {
	regions, state := page.Dirty()
	if len(regions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	if primary != "" && !containsRegion(regions, primary) {
		regions = append([]viewstate.Region{primary}, regions...)
	}

	var buf bytes.Buffer
	for _, region := range regions {
		data := s.view(state)
		data.OOB = region != primary
		if err := s.tmpl.ExecuteTemplate(&buf, string(region), data); err != nil {
			s.logger.Error("failed to render region", "region", region, "error", err)
			c.String(http.StatusInternalServerError, "render failed")
			return
		}
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func containsRegion(regions []viewstate.Region, r viewstate.Region) bool {
	for _, existing := range regions {
		if existing == r {
			return true
		}
	}
	return false
}

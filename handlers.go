package main

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	sessionHeader       = "X-Portfolio-Session"
	sessionQuery        = "session"
	sessionContextKey   = "session_id"
	portfolioContextKey = "portfolio"
)

// page is what every template receives: the component view plus the id the
// browser echoes back on each request.
type page struct {
	View
	SessionID string
}

func (pg page) Headers() string {
	b, _ := json.Marshal(map[string]string{sessionHeader: pg.SessionID})
	return string(b)
}

var templateFuncs = template.FuncMap{
	"icon":    RenderIcon,
	"observe": observeAttrs,
	"fadeIn":  fadeClass,
	"delay":   staggerDelay,
}

// observeAttrs wires an unrevealed element to report its first intersection.
// The htmx intersect trigger carries no ratio, so its threshold is the real
// gate: it only fires once at least RevealThreshold of the element is
// visible, and the report carries that threshold as the ratio.
func observeAttrs(revealed map[string]bool, id string) template.HTMLAttr {
	if revealed[id] {
		return template.HTMLAttr(fmt.Sprintf(`id="%s"`, template.HTMLEscapeString(id)))
	}
	esc := template.HTMLEscapeString(id)
	return template.HTMLAttr(fmt.Sprintf(
		`id="%s" hx-post="/reveal/%s" hx-trigger="intersect once threshold:%g" hx-vals='{"ratio": "%g", "intersecting": "true"}' hx-swap="none" hx-on::after-request="this.classList.add('animate-fade-in')"`,
		esc, esc, RevealThreshold, RevealThreshold,
	))
}

func fadeClass(revealed map[string]bool, id string) string {
	if revealed[id] {
		return "observe-fade animate-fade-in"
	}
	return "observe-fade"
}

// staggerDelay offsets the fade-in of the i-th card in a grid.
func staggerDelay(i int) template.CSS {
	return template.CSS(fmt.Sprintf("animation-delay: %.1fs;", float64(i)*0.1))
}

func loadTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

type Server struct {
	registry *Registry
	log      *Logger
}

// NewRouter builds the gin engine with every route of the page.
func NewRouter(reg *Registry, log *Logger) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	s := &Server{registry: reg, log: log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(assets))

	r.GET("/", s.index)
	r.GET("/healthz", s.health)

	live := r.Group("/")
	live.Use(s.requireSession())
	live.POST("/nav/:section", s.navigate)
	live.POST("/menu/toggle", s.toggleMenu)
	live.POST("/social/toggle", s.toggleSocial)
	live.POST("/social/pointerdown", s.pointerDown)
	live.POST("/social/select", s.selectSocial)
	live.POST("/pointer", s.pointer)
	live.POST("/reveal/:element", s.reveal)
	live.POST("/projects/filter/:category", s.filter)
	live.POST("/session/unmount", s.unmount)

	return r, nil
}

func sessionID(c *gin.Context) string {
	if id := c.GetHeader(sessionHeader); id != "" {
		return id
	}
	return c.Query(sessionQuery)
}

// requireSession resolves the caller's mounted instance. Expired instances
// ask htmx to reload the page, which mounts a new one.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionID(c)
		p, err := s.registry.Get(c.Request.Context(), id)
		if errors.Is(err, ErrSessionNotFound) {
			c.Header("HX-Refresh", "true")
			c.AbortWithStatus(http.StatusGone)
			return
		}
		if err != nil {
			s.log.Error("Error loading session", "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Set(sessionContextKey, id)
		c.Set(portfolioContextKey, p)
		c.Next()
	}
}

func current(c *gin.Context) (*Portfolio, string) {
	return c.MustGet(portfolioContextKey).(*Portfolio), c.GetString(sessionContextKey)
}

func render(c *gin.Context, status int, name string) {
	p, id := current(c)
	c.HTML(status, name, page{View: p.Snapshot(), SessionID: id})
}

// index mounts a fresh instance for every page load. Visitors sending DNT are
// not hashed into the ledger.
func (s *Server) index(c *gin.Context) {
	ip := c.ClientIP()
	if c.GetHeader("DNT") == "1" {
		ip = ""
	}
	id, p, err := s.registry.Mount(c.Request.Context(), ip, c.GetHeader("User-Agent"))
	if err != nil {
		s.log.Error("Error mounting portfolio", "error", err)
		c.String(http.StatusInternalServerError, "Sorry, the page could not be loaded. Please try again later.")
		return
	}
	c.Set(sessionContextKey, id)
	c.HTML(http.StatusOK, "index.html", page{View: p.Snapshot(), SessionID: id})
}

func (s *Server) health(c *gin.Context) {
	stats, err := s.registry.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("Error reading stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": stats})
}

func (s *Server) navigate(c *gin.Context) {
	p, _ := current(c)
	section := c.Param("section")
	if p.ScrollTo(section) {
		trigger, _ := json.Marshal(map[string]any{"portfolio:scroll": map[string]string{"section": section}})
		c.Header("HX-Trigger", string(trigger))
	}
	render(c, http.StatusOK, "nav")
}

func (s *Server) toggleMenu(c *gin.Context) {
	p, _ := current(c)
	p.ToggleMenu()
	render(c, http.StatusOK, "nav")
}

func (s *Server) toggleSocial(c *gin.Context) {
	p, _ := current(c)
	p.ToggleSocial()
	render(c, http.StatusOK, "social-dropdown")
}

func (s *Server) pointerDown(c *gin.Context) {
	p, _ := current(c)
	p.Dispatch(Event{Kind: EventPointerDown, Target: c.PostForm("target")})
	render(c, http.StatusOK, "social-dropdown")
}

// selectSocial fires alongside the browser opening the link in a new tab, so
// it only has to close the menu.
func (s *Server) selectSocial(c *gin.Context) {
	p, _ := current(c)
	name := c.PostForm("name")
	if _, err := p.SelectSocial(name); err != nil {
		s.log.Warn("Unknown social link selected", "name", name)
	}
	render(c, http.StatusOK, "social-dropdown")
}

func (s *Server) pointer(c *gin.Context) {
	p, _ := current(c)
	x, errX := strconv.ParseFloat(c.PostForm("x"), 64)
	y, errY := strconv.ParseFloat(c.PostForm("y"), 64)
	if errX != nil || errY != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	p.Dispatch(Event{
		Kind:    EventPointerMove,
		X:       x,
		Y:       y,
		Variant: ParseCursorVariant(c.PostForm("variant")),
	})
	render(c, http.StatusOK, "cursor")
}

func (s *Server) reveal(c *gin.Context) {
	p, _ := current(c)
	ratio, err := strconv.ParseFloat(c.PostForm("ratio"), 64)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	intersecting, _ := strconv.ParseBool(c.PostForm("intersecting"))
	p.Dispatch(Event{
		Kind:         EventIntersect,
		Target:       c.Param("element"),
		Ratio:        ratio,
		Intersecting: intersecting,
	})
	c.Status(http.StatusNoContent)
}

func (s *Server) filter(c *gin.Context) {
	p, _ := current(c)
	if err := p.SelectFilter(c.Param("category")); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	render(c, http.StatusOK, "projects-body")
}

// unmount is sent with navigator.sendBeacon when the tab is hidden for good.
func (s *Server) unmount(c *gin.Context) {
	_, id := current(c)
	if err := s.registry.Unmount(c.Request.Context(), id); err != nil && !errors.Is(err, ErrSessionNotFound) {
		s.log.Error("Error unmounting session", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

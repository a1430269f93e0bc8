package server

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"edactl/internal/app"
	"edactl/internal/system"
	webembed "edactl/internal/webui/embed"
)

// DefaultAddr is where the GUI listens unless --addr says otherwise.
const DefaultAddr = "127.0.0.1:8787"

type Server struct {
	Addr string
	App  *app.App
}

// Handler builds the gin engine serving the API and the embedded page.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.Recovery())

	mountAPIGin(r, s.App)
	mountEmbeddedUIGin(r)
	return r
}

func (s *Server) Start(ctx context.Context) error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("gui server listening", "addr", addr)
	return srv.ListenAndServe()
}

// requestLogger sends one line per request to the shared logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		system.Logger.Debug("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

// OpenBrowser tries to open a URL in the system browser.
func OpenBrowser(url string) error {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}
	return runCmd(cmd, args...)
}

// mountEmbeddedUIGin serves the embedded page at all non-/api GET routes.
func mountEmbeddedUIGin(r *gin.Engine) {
	dist, err := fs.Sub(webembed.DistFS, "dist")
	if err != nil {
		r.NoRoute(func(c *gin.Context) {
			if isAPI(c.Request.URL.Path) {
				c.Status(http.StatusNotFound)
				return
			}
			c.String(http.StatusNotFound, "gui assets not found")
		})
		return
	}
	httpFS := http.FS(dist)
	r.NoRoute(func(c *gin.Context) {
		if isAPI(c.Request.URL.Path) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		p := strings.TrimPrefix(c.Request.URL.Path, "/")
		if p != "" && p != "index.html" {
			if f, err := httpFS.Open(p); err == nil {
				_ = f.Close()
				if ct := mime.TypeByExtension(filepath.Ext(p)); ct != "" {
					c.Header("Content-Type", ct)
				}
				c.FileFromFS(p, httpFS)
				return
			}
		}
		// http.FileServer redirects index.html requests, so serve it directly
		b, err := fs.ReadFile(dist, "index.html")
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				c.String(http.StatusNotFound, "index.html not found in embedded dist.")
				return
			}
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", b)
	})
}

func isAPI(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"edactl/internal/app"
	"edactl/internal/tools"
	appver "edactl/internal/version"
)

type toolJSON struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Recorded  string `json:"recorded"`
	Installed string `json:"installed"`
}

type checkJSON struct {
	Tool    string `json:"tool"`
	State   string `json:"state"`
	Current string `json:"current,omitempty"`
	Latest  string `json:"latest,omitempty"`
	Error   string `json:"error,omitempty"`
}

type resultJSON struct {
	Tool    string `json:"tool"`
	Op      string `json:"op"`
	OK      bool   `json:"ok"`
	Version string `json:"version,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

func mountAPIGin(r *gin.Engine, a *app.App) {
	api := r.Group("/api")
	api.GET("/health", gin.WrapF(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))
	api.GET("/version", gin.WrapF(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": appver.AppVersion, "platform": string(a.Platform)})
	}))

	api.GET("/tools", func(c *gin.Context) {
		st := a.Refresh(c.Request.Context())
		out := make([]toolJSON, 0, len(st))
		for _, s := range st {
			out = append(out, toolJSON{
				ID:        string(s.Tool.ID),
				Role:      string(s.Tool.Role),
				Name:      s.Tool.DisplayName,
				Recorded:  s.Recorded,
				Installed: s.Installed,
			})
		}
		c.JSON(http.StatusOK, out)
	})
	api.GET("/tools/:id/check", withTool(func(c *gin.Context, id tools.ToolID) {
		chk := a.Check(c.Request.Context(), id)
		out := checkJSON{Tool: string(chk.Tool), State: string(chk.State), Current: chk.Current, Latest: chk.Latest}
		if chk.Err != nil {
			out.Error = chk.Err.Error()
		}
		c.JSON(http.StatusOK, out)
	}))
	api.POST("/tools/:id/install", withTool(func(c *gin.Context, id tools.ToolID) {
		writeResult(c, a.Install(c.Request.Context(), id))
	}))
	api.POST("/tools/:id/update", withTool(func(c *gin.Context, id tools.ToolID) {
		writeResult(c, a.Update(c.Request.Context(), id))
	}))
}

// withTool resolves the :id path parameter to a supported tool.
func withTool(h func(c *gin.Context, id tools.ToolID)) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := tools.Get(tools.ToolID(c.Param("id")))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown tool: " + c.Param("id")})
			return
		}
		h(c, t.ID)
	}
}

// writeResult maps a lifecycle Result to JSON and an HTTP status.
func writeResult(c *gin.Context, res tools.Result) {
	out := resultJSON{
		Tool:    string(res.Tool),
		Op:      string(res.Op),
		OK:      res.OK,
		Version: res.Version,
		Reason:  string(res.Reason),
		Message: res.String(),
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	code := http.StatusOK
	switch {
	case res.OK:
	case res.CheckFailed():
		code = http.StatusBadGateway
	case res.Reason == tools.ReasonNoUpdate, res.Reason == tools.ReasonNotInstalled:
		code = http.StatusConflict
	case res.Reason == tools.ReasonUnsupported, res.Reason == tools.ReasonDependencies:
		code = http.StatusUnprocessableEntity
	default:
		code = http.StatusInternalServerError
	}
	c.JSON(code, out)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

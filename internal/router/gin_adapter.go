package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ginCtx adapts a gin context onto Ctx so the dispatcher can hang off a
// gin engine's NoRoute hook.
type ginCtx struct {
	c *gin.Context
}

func (g *ginCtx) Context() context.Context { return g.c.Request.Context() }

func (g *ginCtx) Method() string { return g.c.Request.Method }
func (g *ginCtx) Path() string   { return g.c.Request.URL.Path }

func (g *ginCtx) Query(name string) string  { return g.c.Query(name) }
func (g *ginCtx) Header(name string) string { return g.c.GetHeader(name) }

func (g *ginCtx) Cookie(name string) (string, error) { return g.c.Cookie(name) }

func (g *ginCtx) ClientIP() string { return g.c.ClientIP() }

func (g *ginCtx) BindJSON(v interface{}) error { return g.c.ShouldBindJSON(v) }

func (g *ginCtx) SetHeader(name, value string) { g.c.Header(name, value) }

func (g *ginCtx) SetCookie(cookie *http.Cookie) {
	sameSite := http.SameSiteLaxMode
	if cookie.SameSite != 0 {
		sameSite = cookie.SameSite
	}
	g.c.SetSameSite(sameSite)
	g.c.SetCookie(cookie.Name, cookie.Value, cookie.MaxAge, cookie.Path,
		cookie.Domain, cookie.Secure, cookie.HttpOnly)
}

func (g *ginCtx) Status(code int) { g.c.Status(code) }

func (g *ginCtx) JSON(status int, body interface{}) { g.c.JSON(status, body) }

// GinHandler returns a gin handler that routes every request it receives
// through the dispatch table.
func (d *Dispatcher) GinHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		d.Dispatch(&ginCtx{c: c})
	}
}

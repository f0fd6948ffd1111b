package router

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// httpCtx adapts a plain net/http request and response writer onto Ctx.
type httpCtx struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpCtx) Context() context.Context { return c.r.Context() }

func (c *httpCtx) Method() string { return c.r.Method }
func (c *httpCtx) Path() string   { return c.r.URL.Path }

func (c *httpCtx) Query(name string) string  { return c.r.URL.Query().Get(name) }
func (c *httpCtx) Header(name string) string { return c.r.Header.Get(name) }

func (c *httpCtx) Cookie(name string) (string, error) {
	cookie, err := c.r.Cookie(name)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClientIP prefers the first X-Forwarded-For hop; the service always sits
// behind a proxy in production.
func (c *httpCtx) ClientIP() string {
	if fwd := c.r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host := c.r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}

func (c *httpCtx) BindJSON(v interface{}) error {
	defer c.r.Body.Close()
	return json.NewDecoder(c.r.Body).Decode(v)
}

func (c *httpCtx) SetHeader(name, value string) { c.w.Header().Set(name, value) }

func (c *httpCtx) SetCookie(cookie *http.Cookie) { http.SetCookie(c.w, cookie) }

func (c *httpCtx) Status(code int) { c.w.WriteHeader(code) }

func (c *httpCtx) JSON(status int, body interface{}) {
	c.w.Header().Set("Content-Type", "application/json")
	c.w.WriteHeader(status)
	_ = json.NewEncoder(c.w).Encode(body)
}

// ServeHTTP makes the dispatcher a drop-in http.Handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.Dispatch(&httpCtx{w: w, r: r})
}

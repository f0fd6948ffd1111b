// Package router dispatches API requests by walking an ordered route table.
// Matching is first-declared-wins, so literal routes must be registered
// before the prefix routes that would otherwise shadow them.
package router

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// H is shorthand for a JSON response body.
type H map[string]interface{}

// Ctx is the capability a handler gets for one request. Transports adapt
// their native request and response types onto it, so handlers never see
// net/http or gin directly.
type Ctx interface {
	Context() context.Context
	Method() string
	Path() string
	Query(name string) string
	Header(name string) string
	Cookie(name string) (string, error)
	ClientIP() string
	BindJSON(v interface{}) error
	SetHeader(name, value string)
	SetCookie(cookie *http.Cookie)
	Status(code int)
	JSON(status int, body interface{})
}

// HandlerFunc handles one matched request.
type HandlerFunc func(c Ctx)

// Route is one row of the dispatch table. Method "*" matches any method,
// used for group fallthrough rows. A Prefix route matches every path
// starting with Pattern except those containing an Exclude fragment, which
// lets a guarded prefix pass its login page and static assets through.
type Route struct {
	Method  string
	Pattern string
	Prefix  bool
	Exclude []string
	Handler HandlerFunc
}

func (r *Route) matches(method, path string) bool {
	if r.Method != "*" && r.Method != method {
		return false
	}
	if !r.Prefix {
		return r.Pattern == path
	}
	if !strings.HasPrefix(path, r.Pattern) {
		return false
	}
	for _, fragment := range r.Exclude {
		if strings.Contains(path, fragment) {
			return false
		}
	}
	return true
}

// RateRule applies a limiter to a slice of the path space before dispatch.
// An Exact rule binds one path; otherwise Pattern is a prefix. Rules are
// checked in order and the first match decides.
type RateRule struct {
	Pattern string
	Exact   bool
	Limiter Limiter
}

// Limiter decides whether a client may proceed. retryAfter is in seconds.
type Limiter interface {
	Allow(key string) (ok bool, retryAfter int64)
}

// LimiterFunc adapts a plain function to the Limiter interface.
type LimiterFunc func(key string) (ok bool, retryAfter int64)

func (f LimiterFunc) Allow(key string) (bool, int64) { return f(key) }

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

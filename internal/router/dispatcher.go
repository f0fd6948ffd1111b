package router

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/parthbuilds/shubhaKuteer2/internal/util"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Credentials": "true",
	"Access-Control-Allow-Origin":      "*",
	"Access-Control-Allow-Methods":     "GET,OPTIONS,PATCH,DELETE,POST,PUT",
	"Access-Control-Allow-Headers":     "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version",
}

// Dispatcher walks its route table in declaration order and runs the first
// route whose method and pattern match. Every response, matched or not,
// carries the CORS headers; OPTIONS requests short-circuit to 200 before
// the table is consulted.
type Dispatcher struct {
	routes    []Route
	rateRules []RateRule
	env       string
}

func NewDispatcher(routes []Route, rateRules []RateRule, env string) *Dispatcher {
	return &Dispatcher{routes: routes, rateRules: rateRules, env: env}
}

// Dispatch serves one request through an adapted Ctx.
func (d *Dispatcher) Dispatch(c Ctx) {
	for name, value := range corsHeaders {
		c.SetHeader(name, value)
	}

	if c.Method() == http.MethodOptions {
		c.Status(http.StatusOK)
		return
	}

	requestID := uuid.New().String()
	logger := util.GetLogger().With(
		zap.String("request_id", requestID),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
	)

	if !d.allow(c) {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("handler panic",
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
			body := H{"success": false, "message": "Internal server error"}
			if d.env != "production" {
				body["error"] = fmt.Sprintf("%v", r)
				body["stack"] = string(debug.Stack())
			}
			c.JSON(http.StatusInternalServerError, body)
		}
	}()

	for i := range d.routes {
		if d.routes[i].matches(c.Method(), c.Path()) {
			d.routes[i].Handler(c)
			return
		}
	}

	// Unmatched paths answer 200 so probes against the function root
	// always see a live service.
	c.JSON(http.StatusOK, H{
		"message":   "API function is running",
		"path":      c.Path(),
		"method":    c.Method(),
		"timestamp": nowStamp(),
	})
}

func (d *Dispatcher) allow(c Ctx) bool {
	path := c.Path()
	for i := range d.rateRules {
		rule := &d.rateRules[i]
		var matched bool
		if rule.Exact {
			matched = rule.Pattern == path
		} else {
			matched = len(path) >= len(rule.Pattern) && path[:len(rule.Pattern)] == rule.Pattern
		}
		if !matched {
			continue
		}
		ok, retryAfter := rule.Limiter.Allow(c.ClientIP())
		if !ok {
			util.RateLimitedTotal.Inc()
			c.SetHeader("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, H{
				"success":    false,
				"message":    "Too many requests, please try again later.",
				"retryAfter": retryAfter,
			})
			return false
		}
		return true
	}
	return true
}

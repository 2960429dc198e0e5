// Package authwatch is the client-side view of auth state. UI code cannot
// read the HTTP-only session cookies, so a Checker asks the status
// endpoint once and then follows published auth-change events.
package authwatch

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"portfolio-web/internal/auth/events"
	"portfolio-web/internal/session/domain"
)

// State mirrors the three-phase lifecycle: loading until the one-shot
// check resolves, then authenticated or unauthenticated.
type State struct {
	User            *domain.User
	IsLoading       bool
	IsAuthenticated bool
}

// Checker performs exactly one status request, caches the outcome, and
// applies later login/logout events delivered via Listen. It never polls
// or retries on its own.
type Checker struct {
	endpoint string
	client   *http.Client

	once  sync.Once
	mu    sync.RWMutex
	state State
}

func New(endpoint string, client *http.Client) *Checker {
	if client == nil {
		client = http.DefaultClient
	}
	return &Checker{
		endpoint: endpoint,
		client:   client,
		state:    State{IsLoading: true},
	}
}

// Check resolves the auth state, issuing the status request on first use
// only.
func (c *Checker) Check(ctx context.Context) State {
	c.once.Do(func() { c.refresh(ctx) })
	return c.State()
}

func (c *Checker) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Listen applies auth-change events until the channel closes. Run it in
// its own goroutine.
func (c *Checker) Listen(ch <-chan events.Event) {
	for e := range ch {
		if e.Authenticated {
			c.setState(State{User: e.User, IsAuthenticated: true})
		} else {
			c.setState(State{})
		}
	}
}

func (c *Checker) refresh(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		c.setState(State{})
		return
	}

	res, err := c.client.Do(req)
	if err != nil {
		// A failed check reads as unauthenticated, never as an error.
		c.setState(State{})
		return
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.setState(State{})
		return
	}

	var payload struct {
		Authenticated bool         `json:"authenticated"`
		User          *domain.User `json:"user"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil || !payload.Authenticated {
		c.setState(State{})
		return
	}

	c.setState(State{User: payload.User, IsAuthenticated: true})
}

func (c *Checker) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

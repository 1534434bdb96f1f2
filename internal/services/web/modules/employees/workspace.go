package employees

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/platform/id"
	"github.com/louisbranch/staffbook/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/staffbook/internal/services/web/platform/sessioncookie"
)

// workspace is one browser's directory session. Requests for the same
// workspace are serialized through mu.
type workspace struct {
	mu      sync.Mutex
	session *directory.Session
}

// workspaces maps session cookies to directory sessions. Idle workspaces
// expire after ttl; the least recently used is evicted past the size limit.
type workspaces struct {
	gateway  directory.Gateway
	opts     directory.Options
	ttl      time.Duration
	policy   requestmeta.SchemePolicy
	newID    func() (string, error)
	sessions *expirable.LRU[string, *workspace]
}

func newWorkspaces(gateway directory.Gateway, cfg Config, policy requestmeta.SchemePolicy) (*workspaces, error) {
	if gateway == nil {
		return nil, errors.New("employees gateway is required")
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	size := cfg.MaxSessions
	if size <= 0 {
		size = defaultMaxSessions
	}
	newID := cfg.NewSessionID
	if newID == nil {
		newID = id.NewID
	}
	opts := cfg.Session
	if opts.NewID == nil {
		opts.NewID = id.NewID
	}
	return &workspaces{
		gateway:  gateway,
		opts:     opts,
		ttl:      ttl,
		policy:   policy,
		newID:    newID,
		sessions: expirable.NewLRU[string, *workspace](size, nil, ttl),
	}, nil
}

// acquire returns the caller's workspace, creating one and setting the
// cookie when the request names none or an expired one. Each use slides
// the expiry window.
func (ws *workspaces) acquire(w http.ResponseWriter, r *http.Request) (*workspace, error) {
	if sessionID, ok := sessioncookie.Read(r); ok {
		if entry, ok := ws.sessions.Get(sessionID); ok {
			ws.sessions.Add(sessionID, entry)
			sessioncookie.Write(w, r, sessionID, ws.ttl, ws.policy)
			return entry, nil
		}
	}
	sessionID, err := ws.newID()
	if err != nil {
		return nil, err
	}
	entry := &workspace{session: directory.NewSession(ws.gateway, ws.opts)}
	ws.sessions.Add(sessionID, entry)
	sessioncookie.Write(w, r, sessionID, ws.ttl, ws.policy)
	return entry, nil
}

// len reports the live workspace count.
func (ws *workspaces) len() int {
	return ws.sessions.Len()
}

package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an idle session survives before Redis expires it.
const DefaultTTL = 24 * time.Hour

// ErrSessionNotFound is returned when a session id has no record in Redis,
// either because it never existed or because it was invalidated.
var ErrSessionNotFound = errors.New("session not found")

/*
 * 'Session' is the authenticated identity bound to an opaque session id.
 * The same record authorizes HTTP requests and realtime connections: the
 * socket layer reloads it on every inbound packet.
 */
type Session struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Gravatar string `json:"gravatar"`
}

/*
 * 'Store' keeps session records in Redis under "session:{id}". It is
 * constructed once at startup and passed by reference to both the HTTP
 * middleware and the realtime layer; they intentionally share the one
 * instance so a logout invalidates live sockets too.
 */
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// newSessionID returns a 64-character random hex id.
func newSessionID() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error generating session id: %v", err)
	}
	return hex.EncodeToString(raw), nil
}

// Create stores a new session record and returns its opaque id.
func (s *Store) Create(ctx context.Context, session *Session) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("error marshaling session data: %v", err)
	}

	if err := s.client.Set(ctx, sessionKey(id), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("error storing session: %v", err)
	}
	return id, nil
}

// Load reloads the session record for id. Sessions that were invalidated or
// expired come back as ErrSessionNotFound.
func (s *Store) Load(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading session: %v", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("error unmarshaling session data: %v", err)
	}
	return &session, nil
}

// Invalidate removes the session record. Live realtime connections bound to
// this id are cut on their next inbound packet.
func (s *Store) Invalidate(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("error deleting session: %v", err)
	}
	return nil
}

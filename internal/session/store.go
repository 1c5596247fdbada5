package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/AbonDev/realm-of-legends/internal/model/chat"
)

var (
	ErrInvalidSession = errors.New("invalid session id")
	ErrPersistence    = errors.New("transcript persistence failed")
)

// Session ids arrive from the client and become file names, so only a
// conservative character set is accepted.
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Store keeps one append-only transcript file per session under dir. The
// directory is created lazily on first append.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Load returns every turn recorded for the session, in append order. A
// session that was never written yields an empty slice, not an error.
func (s *Store) Load(_ context.Context, sessionID string) ([]chat.Turn, error) {
	path, err := s.transcriptPath(sessionID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []chat.Turn{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, sessionID, err)
	}

	var turns []chat.Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrPersistence, sessionID, err)
	}
	return turns, nil
}

// Append adds exactly one turn to the end of the session's transcript and
// persists it before returning. The rewrite goes through a temp file and
// rename so a failed append leaves the previously stored turns intact.
func (s *Store) Append(ctx context.Context, sessionID string, turn chat.Turn) error {
	path, err := s.transcriptPath(sessionID)
	if err != nil {
		return err
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	turns, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	turns = append(turns, turn)

	data, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, sessionID, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create sessions dir: %v", ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, sessionID, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, sessionID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, sessionID, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, sessionID, err)
	}
	return nil
}

func (s *Store) transcriptPath(sessionID string) (string, error) {
	if sessionID == "" || !sessionIDPattern.MatchString(sessionID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSession, sessionID)
	}
	return filepath.Join(s.dir, sessionID+".json"), nil
}

// sessionLock serializes appends against one session; different sessions
// never contend.
func (s *Store) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// Package session хранит текущую сессию клиента: данные пользователя
// и access token. Refresh token сюда не попадает, он живет в cookie jar.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/socialnet/internal/client/storage"
	"github.com/iudanet/socialnet/pkg/api"
)

// Session - аутентифицированное состояние клиента.
type Session struct {
	User        api.User
	AccessToken string
}

// State - общее для всех запросов состояние сессии.
// Передается явно в api.Gatekeeper и auth.Service.
type State interface {
	// Session возвращает текущую сессию и признак ее наличия
	Session() (Session, bool)
	// AccessToken возвращает текущий access token или пустую строку
	AccessToken() string
	// SetSession заменяет сессию целиком
	SetSession(s Session)
	// Clear переводит клиента в состояние "не вошел"
	Clear()
}

// Memory - потокобезопасное состояние в памяти процесса.
type Memory struct {
	mu      sync.RWMutex
	session Session
	ok      bool
}

// NewMemory создает пустое состояние.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Session() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session, m.ok
}

func (m *Memory) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AccessToken
}

func (m *Memory) SetSession(s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
	m.ok = true
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = Session{}
	m.ok = false
}

// Persistent - состояние в памяти с записью в хранилище при каждом изменении.
// Ошибки записи логируются и не влияют на состояние в памяти.
type Persistent struct {
	mem     *Memory
	storage storage.SessionStorage
	logger  *slog.Logger
	now     func() time.Time
}

// NewPersistent загружает сохраненную сессию (если есть) и возвращает состояние.
func NewPersistent(ctx context.Context, st storage.SessionStorage, logger *slog.Logger) (*Persistent, error) {
	p := &Persistent{
		mem:     NewMemory(),
		storage: st,
		logger:  logger,
		now:     time.Now,
	}

	data, err := st.GetSession(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return p, nil
	case err != nil:
		return nil, err
	}

	p.mem.SetSession(Session{User: data.User, AccessToken: data.AccessToken})
	return p, nil
}

func (p *Persistent) Session() (Session, bool) {
	return p.mem.Session()
}

func (p *Persistent) AccessToken() string {
	return p.mem.AccessToken()
}

func (p *Persistent) SetSession(s Session) {
	p.mem.SetSession(s)

	data := &storage.SessionData{
		SavedAt:     p.now(),
		User:        s.User,
		AccessToken: s.AccessToken,
	}
	if err := p.storage.SaveSession(context.Background(), data); err != nil {
		p.logger.Error("Failed to persist session", slog.Any("error", err))
	}
}

func (p *Persistent) Clear() {
	p.mem.Clear()

	if err := p.storage.DeleteSession(context.Background()); err != nil {
		p.logger.Error("Failed to delete persisted session", slog.Any("error", err))
	}
}

// Package auth contiene el store de sesión simulada: acepta cualquier credencial,
// fabrica la identidad y la refleja en el almacenamiento durable.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/grinder-parts-api/internal/application/dto"
	"github.com/jhoicas/grinder-parts-api/internal/application/ports"
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
)

// IDs fijos de los usuarios fabricados.
const (
	loginUserID    = "1"
	registerUserID = "2"
)

// SessionStore mantiene la identidad actual y el flag de autenticación.
// No hay verificación de credenciales ni del token: es una sesión simulada.
type SessionStore struct {
	storage repository.SessionStorage
	tokens  TokenIssuer
	events  ports.EventPublisher
	log     zerolog.Logger
	now     func() time.Time

	// transition serializa login/register/logout incluida la publicación;
	// mu protege el estado leído por IsAuthenticated y CurrentUser.
	transition sync.Mutex
	mu         sync.RWMutex
	user       *entity.User
	token      string
	authed     bool
}

// NewSessionStore construye el store e intenta rehidratar la sesión desde el almacenamiento
// durable: si existen el usuario serializado y el token, la sesión queda autenticada sin validar nada.
func NewSessionStore(
	ctx context.Context,
	storage repository.SessionStorage,
	tokens TokenIssuer,
	events ports.EventPublisher,
	log zerolog.Logger,
) *SessionStore {
	s := &SessionStore{
		storage: storage,
		tokens:  tokens,
		events:  events,
		log:     log.With().Str("component", "session_store").Logger(),
		now:     time.Now,
	}
	s.rehydrate(ctx)
	return s
}

// Login fabrica un usuario admin con el email recibido. Solo falla por errores de almacenamiento.
func (s *SessionStore) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	now := s.now()
	user := &entity.User{
		ID:        loginUserID,
		Email:     in.Email,
		FirstName: "John",
		LastName:  "Doe",
		Role:      entity.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.start(ctx, user)
}

// Register fabrica un usuario con los nombres recibidos y rol "user" (menor que el de Login).
func (s *SessionStore) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	now := s.now()
	user := &entity.User{
		ID:        registerUserID,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.start(ctx, user)
}

// Logout limpia el estado en memoria, borra las claves durables y publica un usuario nil.
// El estado en memoria se limpia aunque falle el borrado durable.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.transition.Lock()
	defer s.transition.Unlock()

	s.mu.Lock()
	s.user, s.token, s.authed = nil, "", false
	s.mu.Unlock()

	var firstErr error
	for _, key := range []string{repository.SessionKeyCurrentUser, repository.SessionKeyToken} {
		if err := s.storage.Remove(ctx, key); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("logout: borrar %s: %w", key, err)
		}
	}
	s.log.Info().Msg("sesión cerrada")
	s.events.Publish(ports.TopicSessionUser, (*entity.User)(nil))
	return firstErr
}

// IsAuthenticated devuelve el último valor publicado del flag de autenticación.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authed
}

// CurrentUser devuelve una copia del usuario actual o nil.
func (s *SessionStore) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token devuelve el token opaco actual ("" sin sesión).
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Subscribe registra un observador del usuario actual (nil al cerrar sesión).
func (s *SessionStore) Subscribe(fn func(*entity.User)) (func(), error) {
	return s.events.Subscribe(ports.TopicSessionUser, func(payload any) {
		u, _ := payload.(*entity.User)
		fn(u)
	})
}

// start persiste usuario y token, marca la sesión como autenticada y publica.
func (s *SessionStore) start(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	s.transition.Lock()
	defer s.transition.Unlock()

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	blob, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("serializar usuario: %w", err)
	}
	if err := s.storage.Set(ctx, repository.SessionKeyCurrentUser, string(blob)); err != nil {
		return nil, fmt.Errorf("guardar usuario: %w", err)
	}
	if err := s.storage.Set(ctx, repository.SessionKeyToken, token); err != nil {
		return nil, fmt.Errorf("guardar token: %w", err)
	}

	s.mu.Lock()
	s.user, s.token, s.authed = user, token, true
	s.mu.Unlock()

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Str("role", user.Role).Msg("sesión iniciada")
	u := *user
	s.events.Publish(ports.TopicSessionUser, &u)
	return &dto.AuthResponse{User: *dto.ToUserResponse(user), Token: token}, nil
}

func (s *SessionStore) rehydrate(ctx context.Context) {
	blob, okUser, err := s.storage.Get(ctx, repository.SessionKeyCurrentUser)
	if err != nil {
		s.log.Warn().Err(err).Msg("rehidratar sesión: leer usuario")
		return
	}
	token, okToken, err := s.storage.Get(ctx, repository.SessionKeyToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("rehidratar sesión: leer token")
		return
	}
	if !okUser || !okToken || blob == "" || token == "" {
		return
	}
	var user entity.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		s.log.Warn().Err(err).Msg("rehidratar sesión: usuario corrupto, se ignora")
		return
	}
	s.user, s.token, s.authed = &user, token, true
	s.log.Info().Str("user_id", user.ID).Msg("sesión rehidratada")
}

package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"eventhorizon/internal/app/artists"
	"eventhorizon/internal/app/dashboard"
	"eventhorizon/internal/auth"
	"eventhorizon/internal/directory"
	"eventhorizon/internal/store"
	"eventhorizon/shared/go/models"
)

// UserService captures the account operations needed by the HTTP handlers.
type UserService interface {
	Signup(ctx context.Context, username, displayName, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (string, models.User, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
}

// ArtistService describes artist directory workflows.
type ArtistService interface {
	Directory(ctx context.Context, filter directory.ArtistFilter, now time.Time) (artists.DirectoryPage, error)
	BySlug(ctx context.Context, slug string, now time.Time) (*models.Artist, error)
	IDBySlug(ctx context.Context, slug string) (int64, error)
	Random(ctx context.Context, limit int) ([]models.Artist, error)
}

// EventService describes event directory workflows.
type EventService interface {
	Directory(ctx context.Context, filter directory.EventFilter) ([]models.Event, error)
	BySlug(ctx context.Context, slug string) (*models.Event, error)
	Featured(ctx context.Context, limit int) ([]models.Event, error)
}

// FollowService coordinates artist follow toggles.
type FollowService interface {
	Toggle(ctx context.Context, userID, artistID int64) (bool, error)
	Status(ctx context.Context, userID, artistID int64) (bool, error)
}

// FavoriteService coordinates event favorite toggles.
type FavoriteService interface {
	Toggle(ctx context.Context, userID, eventID int64) (bool, error)
	Status(ctx context.Context, userID, eventID int64) (bool, error)
}

// ReviewService coordinates review submission and listing.
type ReviewService interface {
	Create(ctx context.Context, userID int64, author string, artistID int64, rating int, text string) (models.Review, error)
	ByArtist(ctx context.Context, artistID int64) ([]models.Review, error)
	Latest(ctx context.Context, limit int) ([]models.Review, error)
}

// DashboardService assembles the per-user dashboard.
type DashboardService interface {
	Overview(ctx context.Context, userID int64, now time.Time) (dashboard.Overview, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     UserService
	artists   ArtistService
	events    EventService
	follows   FollowService
	favorites FavoriteService
	reviews   ReviewService
	dashboard DashboardService
	tokens    *auth.TokenManager

	now func() time.Time
}

// New configures a Server with the given service implementations.
func New(
	users UserService,
	artists ArtistService,
	events EventService,
	follows FollowService,
	favorites FavoriteService,
	reviews ReviewService,
	dash DashboardService,
	tokens *auth.TokenManager,
) *Server {
	return &Server{
		users:     users,
		artists:   artists,
		events:    events,
		follows:   follows,
		favorites: favorites,
		reviews:   reviews,
		dashboard: dash,
		tokens:    tokens,
		now:       time.Now,
	}
}

// Routes exposes the HTTP handlers for the directory and dashboard API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth
	mux.HandleFunc("POST /api/v1/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	// Public directory
	mux.HandleFunc("GET /api/v1/artists", s.handleArtistDirectory)
	mux.HandleFunc("GET /api/v1/artists/{slug}", s.handleArtist)
	mux.HandleFunc("GET /api/v1/artists/{slug}/reviews", s.handleArtistReviews)
	mux.HandleFunc("POST /api/v1/artists/{slug}/reviews", s.handleCreateReview)
	mux.HandleFunc("GET /api/v1/events", s.handleEventDirectory)
	mux.HandleFunc("GET /api/v1/events/{slug}", s.handleEvent)
	mux.HandleFunc("GET /api/v1/home", s.handleHome)

	// Authenticated
	mux.HandleFunc("GET /api/v1/me/profile", s.handleProfile)
	mux.HandleFunc("GET /api/v1/me/dashboard", s.handleDashboard)
	mux.HandleFunc("POST /api/v1/me/follows/{artistID}", s.handleToggleFollow)
	mux.HandleFunc("GET /api/v1/me/follows/{artistID}", s.handleFollowStatus)
	mux.HandleFunc("POST /api/v1/me/favorites/{eventID}", s.handleToggleFavorite)
	mux.HandleFunc("GET /api/v1/me/favorites/{eventID}", s.handleFavoriteStatus)

	return mux
}

type signupRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	user, err := s.users.Signup(r.Context(), req.Username, req.DisplayName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserExists):
			writeJSON(w, http.StatusConflict, errorResponse{Error: "username already taken"})
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, store.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	user, err := s.users.Profile(r.Context(), claims.UserID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// authenticate resolves the bearer token to claims, writing a 401 and
// returning ok=false when the request carries no valid token.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	token := parseBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return nil, false
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
		return nil, false
	}

	return claims, true
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

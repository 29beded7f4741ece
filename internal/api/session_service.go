package api

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/matheus3301/wave/internal/directory"
	"github.com/matheus3301/wave/internal/logging"
	"github.com/matheus3301/wave/internal/settings"
	"github.com/matheus3301/wave/internal/status"
)

// SessionService implements wave.v1.SessionService.
type SessionService struct {
	profile   string
	startedAt time.Time
	machine   *status.Machine
	settings  *settings.Store
	dir       *directory.Directory
	logger    *zap.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(profile string, machine *status.Machine, st *settings.Store, dir *directory.Directory, logger *zap.Logger) *SessionService {
	return &SessionService{
		profile:   profile,
		startedAt: time.Now(),
		machine:   machine,
		settings:  st,
		dir:       dir,
		logger:    logging.OrNop(logger),
	}
}

func (s *SessionService) GetStatus(_ context.Context, _ *Empty) (*GetStatusResponse, error) {
	resp := &GetStatusResponse{
		Profile:   s.profile,
		Status:    string(s.machine.Current()),
		Theme:     string(s.settings.Theme()),
		ChatCount: s.dir.Len(),
		UptimeMs:  time.Since(s.startedAt).Milliseconds(),
	}
	if sess, ok := s.settings.Session(); ok {
		resp.Authenticated = true
		resp.Identifier = sess.Identifier
	}
	return resp, nil
}

func (s *SessionService) Login(_ context.Context, req *LoginRequest) (*LoginResponse, error) {
	sess, err := s.settings.Login(req.Identifier)
	if err != nil {
		return nil, toStatus(err)
	}
	return &LoginResponse{Session: sess}, nil
}

func (s *SessionService) Logout(_ context.Context, _ *Empty) (*LogoutResponse, error) {
	if s.settings.Logout() {
		return &LogoutResponse{Success: true, Message: "logged out"}, nil
	}
	return &LogoutResponse{Message: "logout is not available; the session stays active"}, nil
}

func (s *SessionService) GetTheme(_ context.Context, _ *Empty) (*ThemeResponse, error) {
	return &ThemeResponse{Theme: string(s.settings.Theme())}, nil
}

func (s *SessionService) SetTheme(_ context.Context, req *SetThemeRequest) (*ThemeResponse, error) {
	t, ok := settings.ParseTheme(req.Theme)
	if !ok {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "unknown theme %q (want light or dark)", req.Theme)
	}
	s.settings.SetTheme(t)
	s.logger.Info("theme set", zap.String("theme", string(t)))
	return &ThemeResponse{Theme: string(t)}, nil
}

func (s *SessionService) ToggleTheme(_ context.Context, _ *Empty) (*ThemeResponse, error) {
	return &ThemeResponse{Theme: string(s.settings.ToggleTheme())}, nil
}

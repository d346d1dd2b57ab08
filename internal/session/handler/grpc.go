// Package handler implements the SessionService gRPC server on top of the session state machine.
package handler

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	palayv1 "palay-protector/api/palay/v1"
	historydomain "palay-protector/internal/history/domain"
	"palay-protector/internal/security"
	"palay-protector/internal/server/interceptors"
	"palay-protector/internal/session/domain"
	"palay-protector/internal/session/registry"
	"palay-protector/internal/session/service"
)

// Server implements SessionService. Every RPC except StartSession resolves the caller's session
// from the session id placed in the context by the auth interceptor.
type Server struct {
	palayv1.UnimplementedSessionServiceServer
	machine  *service.Machine
	registry *registry.Registry
	tokens   *security.TokenProvider
}

// NewServer returns a new Session gRPC server. If machine is nil, all RPCs return Unimplemented.
func NewServer(machine *service.Machine, reg *registry.Registry, tokens *security.TokenProvider) *Server {
	return &Server{machine: machine, registry: reg, tokens: tokens}
}

// StartSession creates an anonymous session on the login screen and returns its bearer token.
func (s *Server) StartSession(ctx context.Context, _ *palayv1.Empty) (*palayv1.StartSessionResponse, error) {
	if s.machine == nil || s.registry == nil || s.tokens == nil {
		return nil, status.Error(codes.Unimplemented, "method StartSession not implemented")
	}
	st := s.registry.Create()
	token, expiresAt, err := s.tokens.IssueSession(st.ID)
	if err != nil {
		s.registry.Delete(st.ID)
		log.Printf("session: issue token failed: %v", err)
		return nil, status.Error(codes.Internal, "failed to start session")
	}
	st.Lock()
	defer st.Unlock()
	return &palayv1.StartSessionResponse{
		SessionToken: token,
		ExpiresAt:    timestamppb.New(expiresAt),
		Session:      s.view(st),
	}, nil
}

// GetState returns the caller's current session view.
func (s *Server) GetState(ctx context.Context, _ *palayv1.Empty) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "GetState", notFoundGeneric, func(st *domain.State) error { return nil })
}

func (s *Server) Login(ctx context.Context, req *palayv1.LoginRequest) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "Login", notFoundCredentials, func(st *domain.State) error {
		return s.machine.Login(ctx, st, req.Username, req.Password)
	})
}

func (s *Server) GoToSignup(ctx context.Context, _ *palayv1.Empty) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "GoToSignup", notFoundGeneric, func(st *domain.State) error {
		return s.machine.GoToSignup(ctx, st)
	})
}

func (s *Server) Signup(ctx context.Context, req *palayv1.SignupRequest) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "Signup", notFoundGeneric, func(st *domain.State) error {
		return s.machine.Signup(ctx, st, req.Username, req.Email, req.Phone, req.Password, req.ConfirmPassword)
	})
}

func (s *Server) BackToLogin(ctx context.Context, _ *palayv1.Empty) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "BackToLogin", notFoundGeneric, func(st *domain.State) error {
		return s.machine.BackToLogin(ctx, st)
	})
}

func (s *Server) ForgotPassword(ctx context.Context, _ *palayv1.Empty) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "ForgotPassword", notFoundGeneric, func(st *domain.State) error {
		return s.machine.ForgotPassword(ctx, st)
	})
}

func (s *Server) SendOtp(ctx context.Context, req *palayv1.SendOtpRequest) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "SendOtp", notFoundEmail, func(st *domain.State) error {
		return s.machine.SubmitEmail(ctx, st, req.Email)
	})
}

func (s *Server) VerifyOtp(ctx context.Context, req *palayv1.VerifyOtpRequest) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "VerifyOtp", notFoundGeneric, func(st *domain.State) error {
		return s.machine.SubmitCode(ctx, st, req.Code)
	})
}

func (s *Server) ResendOtp(ctx context.Context, _ *palayv1.Empty) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "ResendOtp", notFoundGeneric, func(st *domain.State) error {
		return s.machine.ResendCode(ctx, st)
	})
}

func (s *Server) ChangePassword(ctx context.Context, req *palayv1.ChangePasswordRequest) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "ChangePassword", notFoundEmail, func(st *domain.State) error {
		return s.machine.ResetPassword(ctx, st, req.NewPassword, req.ConfirmPassword)
	})
}

func (s *Server) Navigate(ctx context.Context, req *palayv1.NavigateRequest) (*palayv1.SessionResponse, error) {
	to, ok := domain.ParseScreen(req.Screen)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown screen %q", req.Screen)
	}
	return s.run(ctx, "Navigate", notFoundGeneric, func(st *domain.State) error {
		return s.machine.Navigate(ctx, st, to)
	})
}

// Detect classifies the submitted image for the logged-in account and returns the stored records.
func (s *Server) Detect(ctx context.Context, req *palayv1.DetectRequest) (*palayv1.DetectResponse, error) {
	st, err := s.state(ctx, "Detect")
	if err != nil {
		return nil, err
	}
	st.Lock()
	defer st.Unlock()
	out, err := s.machine.Detect(ctx, st, req.Image)
	if err != nil {
		return nil, toStatus(err, notFoundGeneric)
	}
	return &palayv1.DetectResponse{
		Session:      s.view(st),
		Detections:   toDetections(out.Records),
		Healthy:      out.Healthy,
		FailedWrites: int32(out.FailedCount),
	}, nil
}

// ListHistory returns the account's detection records, newest first.
func (s *Server) ListHistory(ctx context.Context, _ *palayv1.Empty) (*palayv1.ListHistoryResponse, error) {
	st, err := s.state(ctx, "ListHistory")
	if err != nil {
		return nil, err
	}
	st.Lock()
	defer st.Unlock()
	records, err := s.machine.History(ctx, st)
	if err != nil {
		return nil, toStatus(err, notFoundGeneric)
	}
	return &palayv1.ListHistoryResponse{Session: s.view(st), Records: toDetections(records)}, nil
}

// GetProfile returns the account details with a summary of its scans.
func (s *Server) GetProfile(ctx context.Context, _ *palayv1.Empty) (*palayv1.GetProfileResponse, error) {
	st, err := s.state(ctx, "GetProfile")
	if err != nil {
		return nil, err
	}
	st.Lock()
	defer st.Unlock()
	p, err := s.machine.Profile(ctx, st)
	if err != nil {
		return nil, toStatus(err, notFoundGeneric)
	}
	profile := &palayv1.Profile{
		Username:         p.Account.Username,
		Email:            p.Account.Email,
		Phone:            p.Account.Phone,
		TotalScans:       int32(p.Summary.TotalScans),
		DiseasedScans:    int32(p.Summary.DiseasedScans),
		HealthyScans:     int32(p.Summary.HealthyScans),
		DistinctDiseases: int32(p.Summary.DistinctDiseases),
	}
	if !p.Summary.LastScanAt.IsZero() {
		profile.LastScanAt = timestamppb.New(p.Summary.LastScanAt)
	}
	return &palayv1.GetProfileResponse{Session: s.view(st), Profile: profile}, nil
}

func (s *Server) Logout(ctx context.Context, _ *palayv1.Empty) (*palayv1.SessionResponse, error) {
	return s.run(ctx, "Logout", notFoundGeneric, func(st *domain.State) error {
		return s.machine.Logout(ctx, st)
	})
}

// run resolves the caller's session, applies op under the session lock and returns the resulting view.
func (s *Server) run(ctx context.Context, method, notFoundMsg string, op func(st *domain.State) error) (*palayv1.SessionResponse, error) {
	st, err := s.state(ctx, method)
	if err != nil {
		return nil, err
	}
	st.Lock()
	defer st.Unlock()
	if err := op(st); err != nil {
		return nil, toStatus(err, notFoundMsg)
	}
	return &palayv1.SessionResponse{Session: s.view(st)}, nil
}

func (s *Server) state(ctx context.Context, method string) (*domain.State, error) {
	if s.machine == nil || s.registry == nil {
		return nil, status.Errorf(codes.Unimplemented, "method %s not implemented", method)
	}
	id, ok := interceptors.GetSessionID(ctx)
	if !ok || id == "" {
		return nil, status.Error(codes.Unauthenticated, "session token required")
	}
	st, ok := s.registry.Get(id)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "session expired; start a new session")
	}
	return st, nil
}

// view projects st for the client. Caller holds the state lock.
func (s *Server) view(st *domain.State) *palayv1.SessionView {
	return &palayv1.SessionView{
		Screen:         st.Screen.String(),
		DisplayName:    st.DisplayName,
		LoggedIn:       st.LoggedIn(),
		OtpSecondsLeft: s.machine.OtpSecondsLeft(st),
		Notice:         st.Notice,
	}
}

func toDetections(records []*historydomain.Record) []*palayv1.Detection {
	out := make([]*palayv1.Detection, len(records))
	for i, r := range records {
		out[i] = &palayv1.Detection{
			Id:         r.ID,
			Label:      r.Label,
			Confidence: r.Confidence,
			CreatedAt:  timestamppb.New(r.CreatedAt),
		}
	}
	return out
}

const (
	notFoundGeneric     = "not found"
	notFoundCredentials = "invalid credentials"
	notFoundEmail       = "email not found"
)

// toStatus maps state machine errors to gRPC status errors.
func toStatus(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, domain.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "login required")
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrDuplicateUsername):
		return status.Error(codes.AlreadyExists, "username already exists")
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, notFoundMsg)
	case errors.Is(err, domain.ErrOtpExpired):
		return status.Error(codes.FailedPrecondition, "code has expired; request a new one")
	case errors.Is(err, domain.ErrOtpMismatch):
		return status.Error(codes.InvalidArgument, "code does not match")
	case errors.Is(err, domain.ErrNotifier):
		return status.Error(codes.Unavailable, "could not send verification code")
	case errors.Is(err, domain.ErrClassifier):
		return status.Error(codes.Unavailable, "disease classifier unavailable")
	case errors.Is(err, domain.ErrStorage):
		return status.Error(codes.Internal, "storage failure")
	default:
		log.Printf("session: unexpected error: %v", err)
		return status.Error(codes.Internal, "internal error")
	}
}

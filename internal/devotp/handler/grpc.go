// Package handler implements the dev-only gRPC DevService (GetOTP).
package handler

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	palayv1 "palay-protector/api/palay/v1"
	"palay-protector/internal/devotp"
)

const devOTPNote = "DEV MODE ONLY"

// Server implements DevService. Only registered when dev OTP is enabled and not production.
type Server struct {
	palayv1.UnimplementedDevServiceServer
	store devotp.Store
}

// NewServer returns a DevService server that reads codes from the given store.
func NewServer(store devotp.Store) *Server {
	return &Server{store: store}
}

// GetOTP returns the latest recovery code sent to email. Returns NotFound if missing or expired.
func (s *Server) GetOTP(ctx context.Context, req *palayv1.GetOTPRequest) (*palayv1.GetOTPResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if s.store == nil {
		return nil, status.Error(codes.NotFound, "OTP not found or expired")
	}
	code, ok := s.store.Get(ctx, email)
	if !ok {
		return nil, status.Error(codes.NotFound, "OTP not found or expired")
	}
	return &palayv1.GetOTPResponse{
		Otp:  code,
		Note: devOTPNote,
	}, nil
}

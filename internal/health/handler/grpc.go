package handler

import (
	"context"
	"log"

	palayv1 "palay-protector/api/palay/v1"
)

// Pinger reports database reachability. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PolicyChecker reports whether the policy engine can evaluate. *engine.OPAEvaluator implements it.
type PolicyChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server implements HealthService for readiness/liveness.
type Server struct {
	palayv1.UnimplementedHealthServiceServer
	pinger        Pinger
	policyChecker PolicyChecker
}

// NewServer returns a new Health gRPC server. A nil pinger or policyChecker skips that check.
func NewServer(pinger Pinger, policyChecker PolicyChecker) *Server {
	return &Server{pinger: pinger, policyChecker: policyChecker}
}

// HealthCheck returns SERVING when every configured dependency responds, NOT_SERVING otherwise.
// Dependency failures are reported through the status, never as a gRPC error.
func (s *Server) HealthCheck(ctx context.Context, _ *palayv1.Empty) (*palayv1.HealthCheckResponse, error) {
	if s.pinger != nil {
		if err := s.pinger.PingContext(ctx); err != nil {
			log.Printf("health: database ping failed: %v", err)
			return &palayv1.HealthCheckResponse{Status: palayv1.HealthCheckResponse_NOT_SERVING}, nil
		}
	}
	if s.policyChecker != nil {
		if err := s.policyChecker.HealthCheck(ctx); err != nil {
			log.Printf("health: policy engine check failed: %v", err)
			return &palayv1.HealthCheckResponse{Status: palayv1.HealthCheckResponse_NOT_SERVING}, nil
		}
	}
	return &palayv1.HealthCheckResponse{Status: palayv1.HealthCheckResponse_SERVING}, nil
}

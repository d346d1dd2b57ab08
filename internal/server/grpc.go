package server

import (
	"google.golang.org/grpc"

	palayv1 "palay-protector/api/palay/v1"
	healthhandler "palay-protector/internal/health/handler"
	sessionhandler "palay-protector/internal/session/handler"
)

// Deps holds optional service dependencies for gRPC handlers.
type Deps struct {
	// Session is the SessionService implementation. If nil, session RPCs return Unimplemented.
	Session *sessionhandler.Server
	// HealthPinger is used by HealthService for readiness (e.g. *sql.DB). If nil, HealthCheck skips DB ping.
	HealthPinger healthhandler.Pinger
	// HealthPolicyChecker is used by HealthService for readiness (e.g. OPA evaluator). If nil, HealthCheck skips policy check.
	HealthPolicyChecker healthhandler.PolicyChecker
	// DevOTPHandler is the dev-only DevService (GetOTP). If nil, DevService is not registered. Set only when dev OTP is enabled and not production.
	DevOTPHandler palayv1.DevServiceServer
}

// PublicMethods are the RPCs callable without a session token.
var PublicMethods = map[string]bool{
	palayv1.SessionService_StartSession_FullMethodName: true,
	palayv1.HealthService_HealthCheck_FullMethodName:   true,
	palayv1.DevService_GetOTP_FullMethodName:           true,
}

// TelemetrySkipMethods are the RPCs that emit no grpc_request telemetry event.
var TelemetrySkipMethods = map[string]bool{
	palayv1.HealthService_HealthCheck_FullMethodName: true,
}

// RegisterServices registers all gRPC services with the given server.
//
// Service → handler mapping:
//   - SessionService → internal/session/handler
//   - HealthService  → internal/health/handler
//   - DevService     → internal/devotp/handler (dev only)
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	var session palayv1.SessionServiceServer = sessionhandler.NewServer(nil, nil, nil)
	if deps.Session != nil {
		session = deps.Session
	}
	palayv1.RegisterSessionServiceServer(s, session)
	palayv1.RegisterHealthServiceServer(s, healthhandler.NewServer(deps.HealthPinger, deps.HealthPolicyChecker))
	if deps.DevOTPHandler != nil {
		palayv1.RegisterDevServiceServer(s, deps.DevOTPHandler)
	}
}

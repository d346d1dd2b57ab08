package palayv1

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type loginOnlyServer struct {
	UnimplementedSessionServiceServer
	got *LoginRequest
}

func (s *loginOnlyServer) Login(ctx context.Context, req *LoginRequest) (*SessionResponse, error) {
	s.got = req
	return &SessionResponse{Session: &SessionView{Screen: ScreenHome, LoggedIn: true}}, nil
}

func findMethod(t *testing.T, desc grpc.ServiceDesc, name string) grpc.MethodDesc {
	t.Helper()
	for _, m := range desc.Methods {
		if m.MethodName == name {
			return m
		}
	}
	t.Fatalf("method %s not found in %s", name, desc.ServiceName)
	return grpc.MethodDesc{}
}

// decoderFor returns a dec func that unmarshals the wire encoding of msg, as the server transport does.
func decoderFor(t *testing.T, msg proto.Message) func(any) error {
	t.Helper()
	b, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return func(dst any) error { return proto.Unmarshal(b, dst.(proto.Message)) }
}

func TestSessionServiceDesc_DispatchesWithoutInterceptor(t *testing.T) {
	srv := &loginOnlyServer{}
	m := findMethod(t, SessionService_ServiceDesc, "Login")
	resp, err := m.Handler(srv, context.Background(), decoderFor(t, &LoginRequest{Username: "ana", Password: "secret1"}), nil)
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	if srv.got.GetUsername() != "ana" || srv.got.GetPassword() != "secret1" {
		t.Errorf("server received %v", srv.got)
	}
	if resp.(*SessionResponse).GetSession().GetScreen() != ScreenHome {
		t.Errorf("response = %v", resp)
	}
}

func TestSessionServiceDesc_RunsInterceptorWithFullMethod(t *testing.T) {
	srv := &loginOnlyServer{}
	m := findMethod(t, SessionService_ServiceDesc, "Login")
	var seen string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return handler(ctx, req)
	}
	if _, err := m.Handler(srv, context.Background(), decoderFor(t, &LoginRequest{Username: "ana"}), interceptor); err != nil {
		t.Fatalf("Handler: %v", err)
	}
	if seen != SessionService_Login_FullMethodName {
		t.Errorf("FullMethod = %q, want %q", seen, SessionService_Login_FullMethodName)
	}
}

func TestUnimplementedMethods(t *testing.T) {
	srv := &loginOnlyServer{}
	m := findMethod(t, SessionService_ServiceDesc, "Logout")
	_, err := m.Handler(srv, context.Background(), decoderFor(t, &Empty{}), nil)
	if status.Code(err) != codes.Unimplemented {
		t.Errorf("Logout on embedded Unimplemented: code = %v, want Unimplemented", status.Code(err))
	}
	if len(SessionService_ServiceDesc.Methods) != 16 {
		t.Errorf("SessionService has %d methods, want 16", len(SessionService_ServiceDesc.Methods))
	}
}

func TestFileDescriptor_ServicesMatchServiceDescs(t *testing.T) {
	services := File_palay_v1_palay_proto.Services()
	for _, desc := range []grpc.ServiceDesc{SessionService_ServiceDesc, HealthService_ServiceDesc, DevService_ServiceDesc} {
		sd := services.ByName(protoreflect.FullName(desc.ServiceName).Name())
		if sd == nil {
			t.Fatalf("service %s missing from file descriptor", desc.ServiceName)
		}
		if string(sd.FullName()) != desc.ServiceName {
			t.Errorf("descriptor name = %s, want %s", sd.FullName(), desc.ServiceName)
		}
		if sd.Methods().Len() != len(desc.Methods) {
			t.Errorf("%s: descriptor has %d methods, ServiceDesc has %d", desc.ServiceName, sd.Methods().Len(), len(desc.Methods))
		}
	}
	detect := services.ByName("SessionService").Methods().ByName("Detect")
	if detect.Input().FullName() != "palay.v1.DetectRequest" || detect.Output().FullName() != "palay.v1.DetectResponse" {
		t.Errorf("Detect = %s -> %s", detect.Input().FullName(), detect.Output().FullName())
	}
}

func TestStartSessionResponse_ExpiresAtSurvivesWire(t *testing.T) {
	exp := time.Date(2026, 3, 1, 8, 30, 0, 123000000, time.UTC)
	b, err := proto.Marshal(&StartSessionResponse{
		SessionToken: "tok",
		ExpiresAt:    timestamppb.New(exp),
		Session:      &SessionView{Screen: ScreenLogin},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got StartSessionResponse
	if err := proto.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.GetExpiresAt().AsTime().Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", got.GetExpiresAt().AsTime(), exp)
	}
	if got.GetSession().GetScreen() != ScreenLogin {
		t.Errorf("Screen = %q", got.GetSession().GetScreen())
	}
}

func TestProfile_LastScanAtUnsetByDefault(t *testing.T) {
	var p *Profile
	if p.GetLastScanAt() != nil || p.GetTotalScans() != 0 {
		t.Error("getters on a nil Profile must return zero values")
	}
	b, err := proto.Marshal(&Profile{Username: "ana"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Profile
	if err := proto.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.GetLastScanAt() != nil {
		t.Errorf("LastScanAt = %v, want unset", got.GetLastScanAt())
	}
}

func TestServingStatus_String(t *testing.T) {
	if HealthCheckResponse_SERVING.String() != "SERVING" || HealthCheckResponse_NOT_SERVING.String() != "NOT_SERVING" {
		t.Errorf("String() = %s, %s", HealthCheckResponse_SERVING, HealthCheckResponse_NOT_SERVING)
	}
	if (&HealthCheckResponse{}).GetStatus() != HealthCheckResponse_UNKNOWN {
		t.Error("default status must be UNKNOWN")
	}
}

// Package palayv1 holds the generated palay.v1 messages and gRPC stubs (see palay.proto) plus the
// screen names carried in SessionView.screen and NavigateRequest.screen.
package palayv1

// Screen names as they appear on the wire.
const (
	ScreenLogin             = "login"
	ScreenSignup            = "signup"
	ScreenRecoverRequestOtp = "recover_request_otp"
	ScreenRecoverVerifyOtp  = "recover_verify_otp"
	ScreenResetPassword     = "reset_password"
	ScreenHome              = "home"
	ScreenDetect            = "detect"
	ScreenHistory           = "history"
	ScreenLibrary           = "library"
	ScreenProfile           = "profile"
)

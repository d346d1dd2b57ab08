package domain

// Screen is the screen a session is currently showing.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenRecoverRequestOtp
	ScreenRecoverVerifyOtp
	ScreenResetPassword
	ScreenHome
	ScreenDetect
	ScreenHistory
	ScreenLibrary
	ScreenProfile
)

var screenNames = [...]string{
	ScreenLogin:             "login",
	ScreenSignup:            "signup",
	ScreenRecoverRequestOtp: "recover_request_otp",
	ScreenRecoverVerifyOtp:  "recover_verify_otp",
	ScreenResetPassword:     "reset_password",
	ScreenHome:              "home",
	ScreenDetect:            "detect",
	ScreenHistory:           "history",
	ScreenLibrary:           "library",
	ScreenProfile:           "profile",
}

// String returns the wire name of the screen.
func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// ParseScreen returns the screen with the given wire name.
func ParseScreen(name string) (Screen, bool) {
	for i, n := range screenNames {
		if n == name {
			return Screen(i), true
		}
	}
	return 0, false
}

// IsMain reports whether s is one of the screens reachable through navigation.
func (s Screen) IsMain() bool {
	switch s {
	case ScreenHome, ScreenDetect, ScreenHistory, ScreenLibrary, ScreenProfile:
		return true
	}
	return false
}

// IsRecovery reports whether s belongs to the password recovery flow or signup,
// from which BackToLogin is allowed.
func (s Screen) IsRecovery() bool {
	switch s {
	case ScreenSignup, ScreenRecoverRequestOtp, ScreenRecoverVerifyOtp, ScreenResetPassword:
		return true
	}
	return false
}

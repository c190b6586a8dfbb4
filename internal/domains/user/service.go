package user

import "context"

// Service handles credential verification and token issuance.
type Service interface {
	// Login verifies the credentials and returns a signed bearer token.
	// Failed attempts are not counted; there is no lockout.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}

// ABOUTME: Authentication endpoints: login, signup, OTP verification
// ABOUTME: The only calls issued without a bearer token

package api

import (
	"context"
	"net/http"
)

// LoginResult is the credentials pair issued on a successful login.
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login exchanges email and password for a token/role pair.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignupParams is the registration form. Role is the requested role tag,
// confirmed by the backend after OTP verification.
type SignupParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Signup registers an account and returns the backend's confirmation
// message. The account stays pending until the emailed OTP is verified.
func (c *Client) Signup(ctx context.Context, params SignupParams) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/signup", nil, params, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// VerifyOTP confirms a signup with the one-time code sent by email.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	body := map[string]string{"email": email, "otp": otp}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/verify-otp", nil, body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ResendOTP requests a fresh one-time code for a pending signup.
func (c *Client) ResendOTP(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/resend-otp", nil, body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

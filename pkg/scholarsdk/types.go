package scholarsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// Auth
// ============================================================================

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// VerifyRequest is the body of POST /api/auth/verify.
type VerifyRequest struct {
	Email string `json:"email" example:"ada@example.com"`
	OTP   string `json:"otp" example:"482913"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// UserProfile is the public view of a signed-in user.
type UserProfile struct {
	ID    string `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Email string `json:"email" example:"ada@example.com"`
	Name  string `json:"name" example:"Ada Lovelace"`
}

// MessageResponse is a success or failure envelope with only a message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"User not found"`
}

// LoginResponse is the envelope returned by a successful login.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}

// ============================================================================
// Students
// ============================================================================

// Student is a stored student record.
type Student struct {
	ID        string    `json:"_id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Name      string    `json:"name" example:"Grace Hopper"`
	Email     string    `json:"email" example:"grace@example.com"`
	EnrollNo  EnrollNo  `json:"enroll_no" swaggertype:"integer" example:"1042"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateStudentRequest is the body of POST /api/students. All fields are
// required.
type CreateStudentRequest struct {
	Name     string   `json:"name" example:"Grace Hopper"`
	Email    string   `json:"email" example:"grace@example.com"`
	EnrollNo EnrollNo `json:"enroll_no" swaggertype:"integer" example:"1042"`
}

// UpdateStudentRequest is the body of PUT /api/students/{id}. Omitted
// fields keep their stored value.
type UpdateStudentRequest struct {
	Name     *string   `json:"name,omitempty" example:"Grace Brewster Hopper"`
	Email    *string   `json:"email,omitempty"`
	EnrollNo *EnrollNo `json:"enroll_no,omitempty" swaggertype:"integer"`
}

// StudentResponse wraps a single record. Data is absent when an update
// matched nothing.
type StudentResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    *Student `json:"data,omitempty"`
}

// StudentListResponse wraps every stored record.
type StudentListResponse struct {
	Success bool      `json:"success"`
	Data    []Student `json:"data"`
}

// EnrollNo is an enrollment number. It decodes from a JSON number or a
// numeric string, since HTML form values arrive as strings. An empty string
// or null decodes to zero, which the server treats as missing.
type EnrollNo int64

func (n EnrollNo) Int64() int64 { return int64(n) }

func (n *EnrollNo) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		b = []byte(s)
	}

	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		// Accept integral floats such as 1042.0.
		f, ferr := strconv.ParseFloat(string(b), 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("enroll_no: %q is not an integer", b)
		}
		v = int64(f)
	}
	*n = EnrollNo(v)
	return nil
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime,omitempty" example:"1h2m3s"`
	Version string        `json:"version,omitempty" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
}

package scholarsdk

import (
	"errors"
	"fmt"
	"net/http"
)

// Messages written by the server. The Is* helpers match on these where the
// status code alone is ambiguous.
const (
	MsgOTPSent         = "OTP is sent to your email!"
	MsgUserVerified    = "User is verified"
	MsgLoginSuccessful = "Login Successful!"
	MsgStudentDeleted  = "Student deleted successfully"
	MsgStudentUpdated  = "Student data updated successfully!"

	MsgMissingFields   = "Please provide all the fields!"
	MsgPasswordTooLong = "Password must be at most 72 bytes"
	MsgInvalidBody     = "Invalid JSON in request body"
	MsgUserExists      = "User already exists"
	MsgUserNotFound    = "User not found"
	MsgAlreadyVerified = "User is already verified!"
	MsgInvalidOTP      = "Invalid OTP"
	MsgOTPExpired      = "OTP is expired"
	MsgNotVerified     = "User is not verified!"
	MsgWrongPassword   = "Incorrect Password"
	MsgServerError     = "Server error"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("scholarsync: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("scholarsync: %s (HTTP %d)", e.Message, e.StatusCode)
}

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func hasStatus(err error, code int) bool {
	e, ok := AsAPIError(err)
	return ok && e.StatusCode == code
}

func hasMessage(err error, code int, msg string) bool {
	e, ok := AsAPIError(err)
	return ok && e.StatusCode == code && e.Message == msg
}

func IsBadRequest(err error) bool   { return hasStatus(err, http.StatusBadRequest) }
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }
func IsNotFound(err error) bool     { return hasStatus(err, http.StatusNotFound) }
func IsConflict(err error) bool     { return hasStatus(err, http.StatusConflict) }
func IsNotVerified(err error) bool  { return hasStatus(err, http.StatusForbidden) }

func IsServerError(err error) bool {
	e, ok := AsAPIError(err)
	return ok && e.StatusCode >= http.StatusInternalServerError
}

func IsAlreadyVerified(err error) bool {
	return hasMessage(err, http.StatusBadRequest, MsgAlreadyVerified)
}

func IsInvalidOTP(err error) bool { return hasMessage(err, http.StatusBadRequest, MsgInvalidOTP) }
func IsOTPExpired(err error) bool { return hasMessage(err, http.StatusBadRequest, MsgOTPExpired) }

/*
Package scholarsdk is a Go client for the ScholarSync API.

# Client vs Session

Client covers the public endpoints (signup, OTP verification, login and the
health probes). A successful Login returns a Session that carries the bearer
token and the signed-in user's profile and exposes the student operations:

	client := scholarsdk.NewClient("http://localhost:5000")

	_, err := client.Signup(ctx, scholarsdk.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	_, err = client.VerifyOTP(ctx, scholarsdk.VerifyRequest{Email: "ada@example.com", OTP: "123456"})

	session, err := client.Login(ctx, scholarsdk.LoginRequest{Email: "ada@example.com", Password: "pw"})
	students, err := session.ListStudents(ctx)

Tokens are not refreshed; when the server answers 401 the caller logs in
again. A Session can be persisted with FileSessionStore and restored later
with Client.Resume.

# Errors

Every non-2xx response is returned as *APIError carrying the status code and
the server message. Use the Is* helpers to branch on the kind of failure:

	if scholarsdk.IsConflict(err) {
		// email already registered
	}

The message constants in this package are the exact strings the server
writes, so the server and this client cannot drift apart.
*/
package scholarsdk

package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
)

const fakeOTP = "123456"

// fakeAPI is a small in-memory stand-in for the server.
type fakeAPI struct {
	mu       sync.Mutex
	users    map[string]*fakeUser
	students []scholarsdk.Student
	nextID   int
	revoked  bool
}

type fakeUser struct {
	name, password string
	verified       bool
}

func newFakeAPI(t *testing.T) (*fakeAPI, string) {
	t.Helper()
	f := &fakeAPI{users: map[string]*fakeUser{}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", f.signup)
	mux.HandleFunc("POST /api/auth/verify", f.verify)
	mux.HandleFunc("POST /api/auth/login", f.login)
	mux.Handle("GET /api/students", f.authed(f.list))
	mux.Handle("POST /api/students", f.authed(f.create))
	mux.Handle("PUT /api/students/{id}", f.authed(f.update))
	mux.Handle("DELETE /api/students/{id}", f.authed(f.remove))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv.URL
}

func reply(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, code int, msg string) {
	reply(w, code, scholarsdk.ErrorResponse{Message: msg})
}

func (f *fakeAPI) authed(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		revoked := f.revoked
		f.mu.Unlock()

		if revoked || !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer tok-") {
			fail(w, http.StatusUnauthorized, "Unauthorized: token verification failed")
			return
		}
		h(w, r)
	})
}

func (f *fakeAPI) signup(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.SignupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if req.Name == "" || req.Email == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, scholarsdk.MsgMissingFields)
		return
	}
	if _, ok := f.users[req.Email]; ok {
		fail(w, http.StatusConflict, scholarsdk.MsgUserExists)
		return
	}
	f.users[req.Email] = &fakeUser{name: req.Name, password: req.Password}
	reply(w, http.StatusOK, scholarsdk.MessageResponse{Success: true, Message: scholarsdk.MsgOTPSent})
}

func (f *fakeAPI) verify(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.VerifyRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[req.Email]
	switch {
	case !ok:
		fail(w, http.StatusNotFound, scholarsdk.MsgUserNotFound)
	case u.verified:
		fail(w, http.StatusBadRequest, scholarsdk.MsgAlreadyVerified)
	case req.OTP != fakeOTP:
		fail(w, http.StatusBadRequest, scholarsdk.MsgInvalidOTP)
	default:
		u.verified = true
		reply(w, http.StatusOK, scholarsdk.MessageResponse{Success: true, Message: scholarsdk.MsgUserVerified})
	}
}

func (f *fakeAPI) login(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[req.Email]
	switch {
	case !ok:
		fail(w, http.StatusNotFound, scholarsdk.MsgUserNotFound)
	case !u.verified:
		fail(w, http.StatusForbidden, scholarsdk.MsgNotVerified)
	case u.password != req.Password:
		fail(w, http.StatusUnauthorized, scholarsdk.MsgWrongPassword)
	default:
		reply(w, http.StatusOK, scholarsdk.LoginResponse{
			Success: true,
			Token:   "tok-" + req.Email,
			User:    scholarsdk.UserProfile{ID: "u-" + req.Email, Email: req.Email, Name: u.name},
		})
	}
}

func (f *fakeAPI) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := append([]scholarsdk.Student{}, f.students...)
	reply(w, http.StatusOK, scholarsdk.StudentListResponse{Success: true, Data: data})
}

func (f *fakeAPI) create(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.CreateStudentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if req.Name == "" || req.Email == "" || req.EnrollNo == 0 {
		fail(w, http.StatusBadRequest, scholarsdk.MsgMissingFields)
		return
	}
	f.nextID++
	s := scholarsdk.Student{
		ID:        fmt.Sprintf("s%d", f.nextID),
		Name:      req.Name,
		Email:     req.Email,
		EnrollNo:  req.EnrollNo,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.students = append(f.students, s)
	reply(w, http.StatusOK, scholarsdk.StudentResponse{Success: true, Data: &s})
}

func (f *fakeAPI) update(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.UpdateStudentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	resp := scholarsdk.StudentResponse{Success: true, Message: scholarsdk.MsgStudentUpdated}
	for i := range f.students {
		s := &f.students[i]
		if s.ID != r.PathValue("id") {
			continue
		}
		if req.Name != nil {
			s.Name = *req.Name
		}
		if req.Email != nil {
			s.Email = *req.Email
		}
		if req.EnrollNo != nil {
			s.EnrollNo = *req.EnrollNo
		}
		out := *s
		resp.Data = &out
	}
	reply(w, http.StatusOK, resp)
}

func (f *fakeAPI) remove(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.students[:0]
	for _, s := range f.students {
		if s.ID != r.PathValue("id") {
			kept = append(kept, s)
		}
	}
	f.students = kept
	reply(w, http.StatusOK, scholarsdk.MessageResponse{Success: true, Message: scholarsdk.MsgStudentDeleted})
}

func (f *fakeAPI) addUser(email, name, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[email] = &fakeUser{name: name, password: password, verified: true}
}

func (f *fakeAPI) revokeTokens() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = true
}

package scholarsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is a logged-in user. Its methods call the bearer-protected
// student endpoints. Logging out is purely client side: drop the Session.
type Session struct {
	client *Client
	token  string
	user   UserProfile
}

func (s *Session) Token() string     { return s.token }
func (s *Session) User() UserProfile { return s.user }

// CreateStudent stores a new record and returns it.
func (s *Session) CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/students", s.token, req)
	if err != nil {
		return nil, err
	}

	var out StudentResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListStudents returns every record.
func (s *Session) ListStudents(ctx context.Context) ([]Student, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/api/students", s.token, nil)
	if err != nil {
		return nil, err
	}

	var out StudentListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UpdateStudent changes the given fields. It returns nil and no error when
// the id matched nothing.
func (s *Session) UpdateStudent(ctx context.Context, id string, req UpdateStudentRequest) (*Student, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPut, "/api/students/"+url.PathEscape(id), s.token, req)
	if err != nil {
		return nil, err
	}

	var out StudentResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// DeleteStudent removes a record. Unknown ids are not an error.
func (s *Session) DeleteStudent(ctx context.Context, id string) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, "/api/students/"+url.PathEscape(id), s.token, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

package domain

import "time"

type Student struct {
	ID        string
	Name      string
	Email     string
	EnrollNo  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StudentPatch carries the fields of an update. Nil fields are left alone.
type StudentPatch struct {
	Name     *string
	Email    *string
	EnrollNo *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p StudentPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.EnrollNo == nil
}

// Apply returns s with the patch fields copied over.
func (p StudentPatch) Apply(s Student) Student {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.EnrollNo != nil {
		s.EnrollNo = *p.EnrollNo
	}
	return s
}

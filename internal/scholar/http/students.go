package http

import (
	"net/http"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/domain"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/service"
	"github.com/aussiebroadwan/scholarsync/pkg/httpx"
	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
)

type StudentsHandler struct {
	StudentService *service.StudentService
}

func toStudent(s domain.Student) scholarsdk.Student {
	return scholarsdk.Student{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		EnrollNo:  scholarsdk.EnrollNo(s.EnrollNo),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// HandleCreate stores a new student record.
//
//	@Summary		Create student
//	@Description	All fields are required. enroll_no may be sent as a number or a numeric string.
//	@Tags			Students
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scholarsdk.CreateStudentRequest	true	"Student"
//	@Success		200		{object}	scholarsdk.StudentResponse		"Created record"
//	@Failure		400		{object}	scholarsdk.ErrorResponse		"Missing fields or invalid body"
//	@Failure		401		{object}	scholarsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		500		{object}	scholarsdk.ErrorResponse		"Server error"
//	@Router			/api/students [post].
func (h *StudentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.CreateStudentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w, r, err)
		return
	}

	st, err := h.StudentService.Create(r.Context(), req.Name, req.Email, req.EnrollNo.Int64())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := toStudent(st)
	httpx.WriteJSON(w, http.StatusOK, scholarsdk.StudentResponse{Success: true, Data: &out})
}

// HandleList returns every student record in insertion order.
//
//	@Summary		List students
//	@Tags			Students
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	scholarsdk.StudentListResponse	"All records"
//	@Failure		401	{object}	scholarsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		500	{object}	scholarsdk.ErrorResponse		"Server error"
//	@Router			/api/students [get].
func (h *StudentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.StudentService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	data := make([]scholarsdk.Student, 0, len(list))
	for _, s := range list {
		data = append(data, toStudent(s))
	}
	httpx.WriteJSON(w, http.StatusOK, scholarsdk.StudentListResponse{Success: true, Data: data})
}

// HandleUpdate applies the supplied fields to a student.
//
//	@Summary		Update student
//	@Description	Omitted fields keep their value. An unknown id still succeeds and data is left out.
//	@Tags			Students
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Student ID"
//	@Param			request	body		scholarsdk.UpdateStudentRequest	true	"Fields to change"
//	@Success		200		{object}	scholarsdk.StudentResponse		"Updated record"
//	@Failure		400		{object}	scholarsdk.ErrorResponse		"Invalid body"
//	@Failure		401		{object}	scholarsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		500		{object}	scholarsdk.ErrorResponse		"Server error"
//	@Router			/api/students/{id} [put].
func (h *StudentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.UpdateStudentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w, r, err)
		return
	}

	patch := domain.StudentPatch{Name: req.Name, Email: req.Email}
	if req.EnrollNo != nil {
		n := req.EnrollNo.Int64()
		patch.EnrollNo = &n
	}

	st, err := h.StudentService.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := scholarsdk.StudentResponse{Success: true, Message: scholarsdk.MsgStudentUpdated}
	if st != nil {
		out := toStudent(*st)
		resp.Data = &out
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleDelete removes a student. Unknown ids succeed.
//
//	@Summary		Delete student
//	@Tags			Students
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Student ID"
//	@Success		200	{object}	scholarsdk.MessageResponse	"Deleted"
//	@Failure		401	{object}	scholarsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		500	{object}	scholarsdk.ErrorResponse	"Server error"
//	@Router			/api/students/{id} [delete].
func (h *StudentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.StudentService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, scholarsdk.MessageResponse{
		Success: true,
		Message: scholarsdk.MsgStudentDeleted,
	})
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
)

var errBadEnrollNo = errors.New("enrollment number must be a whole number")

// studentForm keeps the answers of a failed create for the next attempt.
type studentForm struct {
	Name     string
	Email    string
	EnrollNo string
}

func parseEnrollNo(s string) (scholarsdk.EnrollNo, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errBadEnrollNo
	}
	return scholarsdk.EnrollNo(n), nil
}

func (a *App) create(ctx context.Context) error {
	if a.session == nil {
		return errNotLoggedIn
	}

	f := &a.studentDraft
	var err error
	if f.Name, err = a.ask("Name", f.Name); err != nil {
		return err
	}
	if f.Email, err = a.ask("Email", f.Email); err != nil {
		return err
	}
	if f.EnrollNo, err = a.ask("Enrollment no", f.EnrollNo); err != nil {
		return err
	}

	enrollNo, err := parseEnrollNo(f.EnrollNo)
	if err != nil {
		return err
	}

	st, err := a.session.CreateStudent(ctx, scholarsdk.CreateStudentRequest{
		Name:     f.Name,
		Email:    f.Email,
		EnrollNo: enrollNo,
	})
	if err != nil {
		return a.checkSession(err)
	}

	a.studentDraft = studentForm{}
	if st != nil {
		a.success("Created %s (id %s)", st.Name, st.ID)
	}
	return nil
}

func (a *App) list(ctx context.Context) error {
	if a.session == nil {
		return errNotLoggedIn
	}

	students, err := a.session.ListStudents(ctx)
	if err != nil {
		return a.checkSession(err)
	}

	if len(students) == 0 {
		fmt.Fprintln(a.out, "No students yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tENROLL NO")
	for _, s := range students {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", s.ID, s.Name, s.Email, s.EnrollNo.Int64())
	}
	return tw.Flush()
}

// edit prompts for each field with the stored value as default and sends
// only the fields that changed.
func (a *App) edit(ctx context.Context, args []string) error {
	if a.session == nil {
		return errNotLoggedIn
	}

	id, err := a.idArg(args)
	if err != nil {
		return err
	}

	students, err := a.session.ListStudents(ctx)
	if err != nil {
		return a.checkSession(err)
	}
	var current *scholarsdk.Student
	for i := range students {
		if students[i].ID == id {
			current = &students[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("no student with id %s", id)
	}

	name, err := a.ask("Name", current.Name)
	if err != nil {
		return err
	}
	email, err := a.ask("Email", current.Email)
	if err != nil {
		return err
	}
	rawEnroll, err := a.ask("Enrollment no", strconv.FormatInt(current.EnrollNo.Int64(), 10))
	if err != nil {
		return err
	}
	enrollNo, err := parseEnrollNo(rawEnroll)
	if err != nil {
		return err
	}

	var req scholarsdk.UpdateStudentRequest
	if name != current.Name {
		req.Name = &name
	}
	if email != current.Email {
		req.Email = &email
	}
	if enrollNo != current.EnrollNo {
		req.EnrollNo = &enrollNo
	}
	if req.Name == nil && req.Email == nil && req.EnrollNo == nil {
		a.success("Nothing to change")
		return nil
	}

	updated, err := a.session.UpdateStudent(ctx, id, req)
	if err != nil {
		return a.checkSession(err)
	}
	if updated == nil {
		return fmt.Errorf("no student with id %s", id)
	}
	a.success("Updated %s", updated.Name)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if a.session == nil {
		return errNotLoggedIn
	}

	id, err := a.idArg(args)
	if err != nil {
		return err
	}

	if err := a.session.DeleteStudent(ctx, id); err != nil {
		return a.checkSession(err)
	}
	a.success("Student deleted")
	return nil
}

// idArg takes the id from the command line or asks for it.
func (a *App) idArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := a.readLine("Student ID: ")
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errors.New("a student id is required")
	}
	return id, nil
}

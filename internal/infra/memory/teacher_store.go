package memory

import (
	"context"
	"fmt"

	"college_records/internal/domain/teacher"
)

// MaxTeachers is the maximum number of accounts a TeacherStore accepts.
const MaxTeachers = 10

var ErrDuplicateUsername = fmt.Errorf("teacher with this username already exists")
var ErrTeacherCapacityExceeded = fmt.Errorf("maximum teacher capacity reached (%d)", MaxTeachers)
var ErrTeacherAuthFailed = fmt.Errorf("invalid username or password")

type TeacherStore struct {
	teachers []teacher.Teacher
	capacity int
}

func NewTeacherStore() *TeacherStore {
	return &TeacherStore{capacity: MaxTeachers}
}

func (r *TeacherStore) ValidateNewUsername(_ context.Context, username string) error {
	for _, t := range r.teachers {
		if t.Username == username {
			return ErrDuplicateUsername
		}
	}
	return nil
}

func (r *TeacherStore) Add(ctx context.Context, username, password string) (*teacher.Teacher, error) {
	if len(r.teachers) >= r.capacity {
		return nil, ErrTeacherCapacityExceeded
	}
	if err := r.ValidateNewUsername(ctx, username); err != nil {
		return nil, err
	}

	r.teachers = append(r.teachers, teacher.Teacher{Username: username, Password: password})
	t := r.teachers[len(r.teachers)-1]
	return &t, nil
}

// Authenticate scans every account; the first exact match on both fields wins.
func (r *TeacherStore) Authenticate(_ context.Context, username, password string) (*teacher.Teacher, error) {
	for _, t := range r.teachers {
		if t.Username == username && t.Password == password {
			return &t, nil
		}
	}
	return nil, ErrTeacherAuthFailed
}

func (r *TeacherStore) Count(_ context.Context) int {
	return len(r.teachers)
}

func (r *TeacherStore) Capacity() int {
	return r.capacity
}

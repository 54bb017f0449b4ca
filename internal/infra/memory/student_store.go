package memory

import (
	"context"
	"fmt"

	"college_records/internal/domain/student"
)

// MaxStudents is the maximum number of records a StudentStore accepts.
const MaxStudents = 100

// Custom errors
var ErrStudentNotFound = fmt.Errorf("student not found")
var ErrInvalidSAPID = fmt.Errorf("SAP ID must be exactly %d characters", student.SAPIDLength)
var ErrDuplicateSAPID = fmt.Errorf("student with this SAP ID already exists")
var ErrScoreOutOfRange = fmt.Errorf("value outside %d-%d range", student.MinScore, student.MaxScore)
var ErrStudentCapacityExceeded = fmt.Errorf("maximum student capacity reached (%d)", MaxStudents)
var ErrStudentAuthFailed = fmt.Errorf("invalid SAP ID or password")

// StudentStore keeps student records in insertion order.
// It is not safe for concurrent use; the console drives it from a single goroutine.
type StudentStore struct {
	students []student.Student
	capacity int
}

func NewStudentStore() *StudentStore {
	return &StudentStore{capacity: MaxStudents}
}

// indexOf returns the position of sapID, or -1.
func (r *StudentStore) indexOf(sapID string) int {
	for i := range r.students {
		if r.students[i].SAPID == sapID {
			return i
		}
	}
	return -1
}

func (r *StudentStore) FindByID(_ context.Context, sapID string) (*student.Student, error) {
	i := r.indexOf(sapID)
	if i == -1 {
		return nil, ErrStudentNotFound
	}
	s := r.students[i]
	return &s, nil
}

func (r *StudentStore) ValidateNewID(_ context.Context, sapID string) error {
	if len(sapID) != student.SAPIDLength {
		return ErrInvalidSAPID
	}
	if r.indexOf(sapID) != -1 {
		return ErrDuplicateSAPID
	}
	return nil
}

// Add appends a new record with every mark and attendance value at zero.
func (r *StudentStore) Add(ctx context.Context, sapID, password, name string) (*student.Student, error) {
	if len(r.students) >= r.capacity {
		return nil, ErrStudentCapacityExceeded
	}
	if err := r.ValidateNewID(ctx, sapID); err != nil {
		return nil, err
	}

	r.students = append(r.students, student.Student{
		SAPID:    sapID,
		Password: password,
		Name:     name,
	})
	s := r.students[len(r.students)-1]
	return &s, nil
}

// Remove deletes the record and shifts the following records down one position.
func (r *StudentStore) Remove(_ context.Context, sapID string) (*student.Student, error) {
	i := r.indexOf(sapID)
	if i == -1 {
		return nil, ErrStudentNotFound
	}
	removed := r.students[i]
	copy(r.students[i:], r.students[i+1:])
	r.students[len(r.students)-1] = student.Student{}
	r.students = r.students[:len(r.students)-1]
	return &removed, nil
}

func (r *StudentStore) UpdateField(_ context.Context, sapID string, field student.Field, value int) (*student.Student, error) {
	i := r.indexOf(sapID)
	if i == -1 {
		return nil, ErrStudentNotFound
	}
	if !student.ValidScore(value) {
		return nil, ErrScoreOutOfRange
	}
	r.students[i].SetScore(field, value)
	s := r.students[i]
	return &s, nil
}

// Authenticate requires a byte-exact match of both SAP ID and password.
func (r *StudentStore) Authenticate(_ context.Context, sapID, password string) (*student.Student, error) {
	i := r.indexOf(sapID)
	if i == -1 || r.students[i].Password != password {
		return nil, ErrStudentAuthFailed
	}
	s := r.students[i]
	return &s, nil
}

func (r *StudentStore) List(_ context.Context) []student.Summary {
	summaries := make([]student.Summary, 0, len(r.students))
	for _, s := range r.students {
		summaries = append(summaries, student.Summary{Name: s.Name, SAPID: s.SAPID})
	}
	return summaries
}

func (r *StudentStore) Count(_ context.Context) int {
	return len(r.students)
}

func (r *StudentStore) Capacity() int {
	return r.capacity
}

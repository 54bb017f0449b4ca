package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"college_records/internal/domain/student"
)

func sapID(n int) string {
	return fmt.Sprintf("%09d", n)
}

func fillStudents(t *testing.T, r *StudentStore, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		if _, err := r.Add(ctx, sapID(i), "pw", fmt.Sprintf("Student %d", i)); err != nil {
			t.Fatalf("Add(%s) error = %v", sapID(i), err)
		}
	}
}

func TestStudentStore_AddAndFindByID(t *testing.T) {
	ctx := context.Background()
	r := NewStudentStore()

	added, err := r.Add(ctx, "123456789", "pw", "Alice")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added.Name != "Alice" || added.Marks != (student.Scores{}) || added.Attendance != (student.Scores{}) {
		t.Fatalf("Add() = %+v, want zeroed record for Alice", added)
	}

	found, err := r.FindByID(ctx, "123456789")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if *found != *added {
		t.Errorf("FindByID() = %+v, want %+v", found, added)
	}

	// Copies returned by the store must not alias stored records.
	found.Marks.Maths = 99
	again, _ := r.FindByID(ctx, "123456789")
	if again.Marks.Maths != 0 {
		t.Errorf("mutating a returned copy changed the store: maths = %d", again.Marks.Maths)
	}

	if _, err := r.FindByID(ctx, "987654321"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("FindByID(missing) error = %v, want %v", err, ErrStudentNotFound)
	}
}

func TestStudentStore_AddValidation(t *testing.T) {
	ctx := context.Background()
	r := NewStudentStore()
	if _, err := r.Add(ctx, "123456789", "pw", "Alice"); err != nil {
		t.Fatalf("seed Add() error = %v", err)
	}

	tests := []struct {
		name    string
		sapID   string
		wantErr error
	}{
		{"too short", "12345678", ErrInvalidSAPID},
		{"too long", "1234567890", ErrInvalidSAPID},
		{"empty", "", ErrInvalidSAPID},
		{"duplicate", "123456789", ErrDuplicateSAPID},
		{"valid", "000000001", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.ValidateNewID(ctx, tt.sapID); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateNewID(%q) error = %v, want %v", tt.sapID, err, tt.wantErr)
			}
			before := r.Count(ctx)
			_, err := r.Add(ctx, tt.sapID, "pw", "Bob")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add(%q) error = %v, want %v", tt.sapID, err, tt.wantErr)
			}
			if tt.wantErr != nil && r.Count(ctx) != before {
				t.Errorf("failed Add changed count from %d to %d", before, r.Count(ctx))
			}
		})
	}
}

func TestStudentStore_CapacityExceeded(t *testing.T) {
	ctx := context.Background()
	r := NewStudentStore()
	fillStudents(t, r, MaxStudents)

	_, err := r.Add(ctx, "999999999", "pw", "Overflow")
	if !errors.Is(err, ErrStudentCapacityExceeded) {
		t.Fatalf("Add() on full store error = %v, want %v", err, ErrStudentCapacityExceeded)
	}
	if got := r.Count(ctx); got != MaxStudents {
		t.Errorf("Count() = %d, want %d", got, MaxStudents)
	}
	// Capacity is checked before the ID, so even a malformed ID reports capacity.
	if _, err := r.Add(ctx, "bad", "pw", "x"); !errors.Is(err, ErrStudentCapacityExceeded) {
		t.Errorf("Add(bad id) on full store error = %v, want %v", err, ErrStudentCapacityExceeded)
	}
}

func TestStudentStore_RemoveCompactsInOrder(t *testing.T) {
	ctx := context.Background()
	r := NewStudentStore()
	fillStudents(t, r, 5)

	removed, err := r.Remove(ctx, sapID(2))
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if removed.SAPID != sapID(2) {
		t.Errorf("Remove() returned %s, want %s", removed.SAPID, sapID(2))
	}
	if got := r.Count(ctx); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	if _, err := r.FindByID(ctx, sapID(2)); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("FindByID(removed) error = %v, want %v", err, ErrStudentNotFound)
	}

	want := []string{sapID(0), sapID(1), sapID(3), sapID(4)}
	list := r.List(ctx)
	if len(list) != len(want) {
		t.Fatalf("List() len = %d, want %d", len(list), len(want))
	}
	for i, s := range list {
		if s.SAPID != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, s.SAPID, want[i])
		}
	}

	if _, err := r.Remove(ctx, sapID(2)); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("second Remove() error = %v, want %v", err, ErrStudentNotFound)
	}
}

func TestStudentStore_RemoveFreesCapacity(t *testing.T) {
	ctx := context.Background()
	r := NewStudentStore()
	fillStudents(t, r, MaxStudents)

	if _, err := r.Remove(ctx, sapID(0)); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := r.Add(ctx, "999999999", "pw", "Late"); err != nil {
		t.Errorf("Add() after Remove error = %v", err)
	}
}

func TestStudentStore_UpdateField(t *testing.T) {
	ctx := context.Background()
	r := NewStudentStore()
	fillStudents(t, r, 1)
	id := sapID(0)

	fields := []student.Field{}
	for _, subj := range student.Subjects {
		fields = append(fields, student.Field{Subject: subj, Kind: student.Marks}, student.Field{Subject: subj, Kind: student.Attendance})
	}

	for i, f := range fields {
		value := 10 + i
		updated, err := r.UpdateField(ctx, id, f, value)
		if err != nil {
			t.Fatalf("UpdateField(%v) error = %v", f, err)
		}
		if updated.Score(f) != value {
			t.Errorf("UpdateField(%v) returned %d, want %d", f, updated.Score(f), value)
		}
	}

	// Every field holds its own value; no update leaked into another field.
	got, _ := r.FindByID(ctx, id)
	for i, f := range fields {
		if got.Score(f) != 10+i {
			t.Errorf("Score(%v) = %d, want %d", f, got.Score(f), 10+i)
		}
	}

	maths := student.Field{Subject: student.Maths, Kind: student.Marks}
	for _, v := range []int{-1, 101, 150} {
		if _, err := r.UpdateField(ctx, id, maths, v); !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("UpdateField(%d) error = %v, want %v", v, err, ErrScoreOutOfRange)
		}
	}
	got, _ = r.FindByID(ctx, id)
	if got.Score(maths) != 10 {
		t.Errorf("rejected updates changed maths marks to %d", got.Score(maths))
	}

	for _, v := range []int{student.MinScore, student.MaxScore} {
		if _, err := r.UpdateField(ctx, id, maths, v); err != nil {
			t.Errorf("UpdateField(%d) boundary error = %v", v, err)
		}
	}

	if _, err := r.UpdateField(ctx, "000000999", maths, 50); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("UpdateField(missing) error = %v, want %v", err, ErrStudentNotFound)
	}
}

func TestStudentStore_Authenticate(t *testing.T) {
	ctx := context.Background()
	r := NewStudentStore()
	if _, err := r.Add(ctx, "123456789", "Secret", "Alice"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	tests := []struct {
		name     string
		sapID    string
		password string
		wantErr  error
	}{
		{"exact", "123456789", "Secret", nil},
		{"wrong case", "123456789", "secret", ErrStudentAuthFailed},
		{"extra char", "123456789", "Secret1", ErrStudentAuthFailed},
		{"missing char", "123456789", "Secre", ErrStudentAuthFailed},
		{"id off by one", "123456788", "Secret", ErrStudentAuthFailed},
		{"empty password", "123456789", "", ErrStudentAuthFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := r.Authenticate(ctx, tt.sapID, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Authenticate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && s.Name != "Alice" {
				t.Errorf("Authenticate() = %+v, want Alice", s)
			}
		})
	}
}

func TestStudentStore_ListEmpty(t *testing.T) {
	list := NewStudentStore().List(context.Background())
	if list == nil || len(list) != 0 {
		t.Errorf("List() on empty store = %#v, want empty non-nil slice", list)
	}
}

func TestStudentStore_Scenario(t *testing.T) {
	ctx := context.Background()
	stores := NewStores()

	if _, err := stores.Teachers.Add(ctx, "admin", "pass1"); err != nil {
		t.Fatalf("Teachers.Add() error = %v", err)
	}
	if _, err := stores.Students.Add(ctx, "123456789", "pw", "Alice"); err != nil {
		t.Fatalf("Students.Add() error = %v", err)
	}

	alice, err := stores.Students.Authenticate(ctx, "123456789", "pw")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if alice.Name != "Alice" || alice.Marks != (student.Scores{}) || alice.Attendance != (student.Scores{}) {
		t.Fatalf("Authenticate() = %+v, want Alice with zero scores", alice)
	}

	maths := student.Field{Subject: student.Maths, Kind: student.Marks}
	if _, err := stores.Students.UpdateField(ctx, "123456789", maths, 85); err != nil {
		t.Fatalf("UpdateField(85) error = %v", err)
	}
	if _, err := stores.Students.UpdateField(ctx, "123456789", maths, 150); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("UpdateField(150) error = %v, want %v", err, ErrScoreOutOfRange)
	}
	alice, _ = stores.Students.FindByID(ctx, "123456789")
	if alice.Marks.Maths != 85 {
		t.Errorf("maths marks = %d, want 85", alice.Marks.Maths)
	}

	if _, err := stores.Students.Remove(ctx, "123456789"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if stores.Students.Count(ctx) != 0 {
		t.Errorf("Count() = %d, want 0", stores.Students.Count(ctx))
	}
	if _, err := stores.Students.FindByID(ctx, "123456789"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("FindByID() error = %v, want %v", err, ErrStudentNotFound)
	}
}

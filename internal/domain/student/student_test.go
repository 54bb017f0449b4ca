package student

import "testing"

func TestSubjectFromChoice(t *testing.T) {
	tests := []struct {
		choice int
		want   Subject
		ok     bool
	}{
		{1, Maths, true},
		{2, Physics, true},
		{3, Coding, true},
		{0, 0, false},
		{4, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := SubjectFromChoice(tt.choice)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("SubjectFromChoice(%d) = (%v, %v), want (%v, %v)", tt.choice, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStudent_SetScoreTouchesOnlyOneField(t *testing.T) {
	for _, kind := range []FieldKind{Marks, Attendance} {
		for _, subj := range Subjects {
			var s Student
			f := Field{Subject: subj, Kind: kind}
			s.SetScore(f, 42)

			for _, otherKind := range []FieldKind{Marks, Attendance} {
				for _, otherSubj := range Subjects {
					other := Field{Subject: otherSubj, Kind: otherKind}
					want := 0
					if other == f {
						want = 42
					}
					if got := s.Score(other); got != want {
						t.Errorf("after SetScore(%v %v), Score(%v %v) = %d, want %d", subj, kind, otherSubj, otherKind, got, want)
					}
				}
			}
		}
	}
}

func TestValidScore(t *testing.T) {
	for v, want := range map[int]bool{-1: false, 0: true, 50: true, 100: true, 101: false} {
		if got := ValidScore(v); got != want {
			t.Errorf("ValidScore(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestNames(t *testing.T) {
	if Physics.String() != "Physics" || Subject(9).String() != "Unknown" {
		t.Errorf("unexpected subject names: %s, %s", Physics, Subject(9))
	}
	if Marks.String() != "marks" || Attendance.String() != "attendance" {
		t.Errorf("unexpected kind names: %s, %s", Marks, Attendance)
	}
}

package student

const (
	SAPIDLength       = 9
	MaxPasswordLength = 19
	MaxNameLength     = 49

	MinScore = 0
	MaxScore = 100
)

// Subject is one of the three tracked courses.
type Subject int

const (
	Maths Subject = iota
	Physics
	Coding
)

// Subjects lists every subject in display order.
var Subjects = []Subject{Maths, Physics, Coding}

func (s Subject) String() string {
	switch s {
	case Maths:
		return "Maths"
	case Physics:
		return "Physics"
	case Coding:
		return "Coding"
	default:
		return "Unknown"
	}
}

// SubjectFromChoice maps a 1-based menu choice to a Subject.
func SubjectFromChoice(choice int) (Subject, bool) {
	if choice < 1 || choice > len(Subjects) {
		return 0, false
	}
	return Subjects[choice-1], true
}

// FieldKind selects between the marks and attendance columns.
type FieldKind int

const (
	Marks FieldKind = iota
	Attendance
)

func (k FieldKind) String() string {
	if k == Attendance {
		return "attendance"
	}
	return "marks"
}

// Field identifies a single editable score of a student.
type Field struct {
	Subject Subject
	Kind    FieldKind
}

// Scores holds one integer per subject, each in [MinScore, MaxScore].
type Scores struct {
	Maths   int
	Physics int
	Coding  int
}

func (sc Scores) Get(s Subject) int {
	switch s {
	case Physics:
		return sc.Physics
	case Coding:
		return sc.Coding
	default:
		return sc.Maths
	}
}

func (sc *Scores) Set(s Subject, v int) {
	switch s {
	case Physics:
		sc.Physics = v
	case Coding:
		sc.Coding = v
	default:
		sc.Maths = v
	}
}

// Student represents an enrolled student and their academic record.
type Student struct {
	SAPID      string
	Password   string
	Name       string
	Marks      Scores
	Attendance Scores
}

// Score returns the value stored under f.
func (s Student) Score(f Field) int {
	if f.Kind == Attendance {
		return s.Attendance.Get(f.Subject)
	}
	return s.Marks.Get(f.Subject)
}

// SetScore overwrites the value stored under f. Range checks are the caller's job.
func (s *Student) SetScore(f Field, v int) {
	if f.Kind == Attendance {
		s.Attendance.Set(f.Subject, v)
		return
	}
	s.Marks.Set(f.Subject, v)
}

// ValidScore reports whether v may be stored as a mark or attendance value.
func ValidScore(v int) bool {
	return v >= MinScore && v <= MaxScore
}

// Summary is the (name, id) pair produced by roster listings.
type Summary struct {
	Name  string
	SAPID string
}

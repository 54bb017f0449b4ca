package memory

// Stores groups the student and teacher stores that live for the whole process.
type Stores struct {
	Students *StudentStore
	Teachers *TeacherStore
}

// NewStores creates empty stores. All data is dropped when the process exits.
func NewStores() *Stores {
	return &Stores{
		Students: NewStudentStore(),
		Teachers: NewTeacherStore(),
	}
}

package record

import "fmt"

// StudentData is a student's name, age and marks.
type StudentData struct {
	name  string
	age   int
	marks int
}

type studentDataFields struct {
	Name  string `json:"name"`
	Age   int    `json:"age"   validate:"gt=0"`
	Marks int    `json:"marks" validate:"percent"`
}

// NewStudentData validates age (> 0) and marks (0 to 100).
func NewStudentData(name string, age, marks int) (*StudentData, error) {
	return construct("student data", studentDataFields{Name: name, Age: age, Marks: marks},
		func(f studentDataFields) *StudentData {
			return &StudentData{name: f.Name, age: f.Age, marks: f.Marks}
		})
}

// Name, Age and Marks read the record's fields.
func (s *StudentData) Name() string { return s.name }
func (s *StudentData) Age() int     { return s.age }
func (s *StudentData) Marks() int   { return s.marks }

// Details summarises the record in one line.
func (s *StudentData) Details() string {
	return fmt.Sprintf("name is %s, age is %d and %d marks scored", s.name, s.age, s.marks)
}

// Student keeps its marks behind an accessor. There is no setter: marks are
// fixed once the record exists.
type Student struct {
	name  string
	marks int
}

type studentFields struct {
	Name  string `json:"name"`
	Marks int    `json:"marks" validate:"percent"`
}

// NewStudent validates marks (0 to 100).
func NewStudent(name string, marks int) (*Student, error) {
	return construct("student", studentFields{Name: name, Marks: marks},
		func(f studentFields) *Student {
			return &Student{name: f.Name, marks: f.Marks}
		})
}

// Name and Marks read the record's fields.
func (s *Student) Name() string { return s.name }
func (s *Student) Marks() int   { return s.marks }

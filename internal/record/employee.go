package record

// monthsPerYear converts a monthly salary into an annual one.
const monthsPerYear = 12

// Employee is a name and a monthly salary.
type Employee struct {
	name   string
	salary int64
}

// The salary cap is math.MaxInt64 / 12, so AnnualSalary cannot overflow.
type employeeFields struct {
	Name   string `json:"name"   validate:"required"`
	Salary int64  `json:"salary" validate:"gte=0,lte=768614336404564650"`
}

// NewEmployee records a named employee with a non-negative monthly salary.
func NewEmployee(name string, salary int64) (*Employee, error) {
	return construct("employee", employeeFields{Name: name, Salary: salary},
		func(f employeeFields) *Employee {
			return &Employee{name: f.Name, salary: f.Salary}
		})
}

// Name and Salary read the employee's fields.
func (e *Employee) Name() string  { return e.name }
func (e *Employee) Salary() int64 { return e.salary }

// AnnualSalary is twelve monthly salaries.
func (e *Employee) AnnualSalary() int64 {
	return e.salary * monthsPerYear
}

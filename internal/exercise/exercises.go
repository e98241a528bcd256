package exercise

import (
	"fmt"

	"github.com/aanand-mishra/oops-exercises/internal/record"
	"github.com/aanand-mishra/oops-exercises/internal/utils/report"
)

// All returns every scenario in the order the exercises are numbered.
func All() []Exercise {
	return []Exercise{
		{Name: "student data", Run: studentData},
		{Name: "car info", Run: carInfo},
		{Name: "bank account", Run: bankAccount},
		{Name: "employee salary", Run: employeeSalary},
		{Name: "user login", Run: userLogin},
		{Name: "student marks", Run: studentMarks},
		{Name: "counter", Run: counter},
		{Name: "encapsulated bank account", Run: encapsulatedBankAccount},
		{Name: "product inventory", Run: productInventory},
	}
}

func studentData(s *Session) error {
	std, err := record.NewStudentData("Joshi", 20, 52)
	if err := s.Construct("open Joshi age 20 marks 52", err, ""); err != nil {
		return err
	}
	s.Note("details", std.Details())

	_, err = record.NewStudentData("Joshi", -5, 52)
	return s.Construct("open Joshi age -5 marks 52", err, "")
}

func carInfo(s *Session) error {
	year := record.CurrentYear()

	car, err := record.NewCarInfo("Tata", "Tiago", year)
	if err := s.Construct(fmt.Sprintf("open Tata Tiago %d", year), err, ""); err != nil {
		return err
	}
	s.Note("info", car.Info())
	s.Note("insurance", fmt.Sprintf("%d$", car.InsuranceAmount()))

	old, err := record.NewCarInfo("Tata", "Indica", year-6)
	if err := s.Construct(fmt.Sprintf("open Tata Indica %d", year-6), err, ""); err != nil {
		return err
	}
	details, err := report.FormatJSON(old)
	s.Do("details", err, details)
	s.Note("insurance", fmt.Sprintf("%d$", old.InsuranceAmount()))

	_, err = record.NewCarInfo("Tata", "Nexon", year+1)
	return s.Construct(fmt.Sprintf("open Tata Nexon %d", year+1), err, "")
}

func bankAccount(s *Session) error {
	acc, err := record.NewBankAccount("Joshi", 500)
	if err := s.Construct("open Joshi 500", err, ""); err != nil {
		return err
	}
	s.Note("show balance", acc.String())
	s.Do("deposit 200", acc.Deposit(200), acc.String())
	s.Do("withdraw 300", acc.Withdraw(300), acc.String())

	_, err = record.NewBankAccount("Joshi", -200)
	return s.Construct("open Joshi -200", err, "")
}

func employeeSalary(s *Session) error {
	staff := []struct {
		name   string
		salary int64
	}{
		{"hece", 125125},
		{"hgecyed", 254215},
		{"kdjdfh", 125223},
	}

	for _, e := range staff {
		emp, err := record.NewEmployee(e.name, e.salary)
		if err := s.Construct(fmt.Sprintf("open %s %d", e.name, e.salary), err, ""); err != nil {
			return err
		}
		s.Note("annual salary "+emp.Name(), fmt.Sprintf("%d", emp.AnnualSalary()))
	}
	return nil
}

func userLogin(s *Session) error {
	usr, err := record.NewUser("Joshi", "12345")
	if err := s.Construct("open Joshi", err, ""); err != nil {
		return err
	}
	s.Do("login with correct password", usr.Login("12345"), "logged in")
	s.Do("login with wrong password", usr.Login("wrong"), "")
	s.Do("change password with wrong old password", usr.ChangePassword("nope!", "abcdef"), "")
	s.Do("change password to the same password", usr.ChangePassword("12345", "12345"), "")
	s.Do("change password", usr.ChangePassword("12345", "abcdef"), "password changed")
	s.Do("login with new password", usr.Login("abcdef"), "logged in")

	_, err = record.NewUser("Joshi", "1234")
	return s.Construct("open Joshi with a 4 character password", err, "")
}

func studentMarks(s *Session) error {
	std, err := record.NewStudent("Joshi", 85)
	if err := s.Construct("open Joshi 85", err, ""); err != nil {
		return err
	}
	s.Note("marks", fmt.Sprintf("total marks for %s is %d", std.Name(), std.Marks()))

	_, err = record.NewStudent("Joshi", 150)
	return s.Construct("open Joshi 150", err, "")
}

func counter(s *Session) error {
	cnt, err := record.NewCounter(10)
	if err := s.Construct("open 10", err, ""); err != nil {
		return err
	}
	s.Do("increment", cnt.Increment(), fmt.Sprintf("count %d", cnt.Count()))
	s.Do("decrement", cnt.Decrement(), fmt.Sprintf("count %d", cnt.Count()))

	small, err := record.NewCounter(1)
	if err := s.Construct("open 1", err, ""); err != nil {
		return err
	}
	s.Do("decrement", small.Decrement(), fmt.Sprintf("count %d", small.Count()))
	s.Do("decrement", small.Decrement(), "")
	return nil
}

func encapsulatedBankAccount(s *Session) error {
	acc, err := record.NewBankAccount("", 500)
	if err := s.Construct("open 500", err, ""); err != nil {
		return err
	}
	s.Do("deposit 0", acc.Deposit(0), "")
	s.Do("deposit 200", acc.Deposit(200), acc.String())
	s.Do("withdraw 300", acc.Withdraw(300), acc.String())
	s.Do("withdraw 1000", acc.Withdraw(1000), "")
	s.Note("balance", acc.String())
	return nil
}

func productInventory(s *Session) error {
	p, err := record.NewProduct("notebook", 120, 10)
	if err := s.Construct("open notebook 120$ x10", err, ""); err != nil {
		return err
	}
	s.Do("buy 3", p.Buy(3), p.Info())
	s.Do("buy 20", p.Buy(20), "")
	s.Do("restock 5", p.Restock(5), p.Info())
	s.Do("restock 0", p.Restock(0), "")

	_, err = record.NewProduct("eraser", -1, 5)
	return s.Construct("open eraser -1$ x5", err, "")
}

package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the format used for every date column (ISO-8601 calendar date).
const DateLayout = "2006-01-02"

// Employee is a roster record: one person with a role and a start date.
type Employee struct {
	Username   string
	FirstName  string
	LastName   string
	FullName   string
	Email      string
	Phone      string
	Department string
	Role       string
	StartDate  time.Time
	EmployeeID int
}

// EmployeeHeader is the fixed column order for roster output.
var EmployeeHeader = []string{
	"username", "first_name", "last_name", "full_name",
	"email", "phone", "department", "role", "start_date", "employee_id",
}

// Values returns the record fields in EmployeeHeader order.
func (e Employee) Values() []string {
	return []string{
		e.Username,
		e.FirstName,
		e.LastName,
		e.FullName,
		e.Email,
		e.Phone,
		e.Department,
		e.Role,
		e.StartDate.Format(DateLayout),
		strconv.Itoa(e.EmployeeID),
	}
}

// Account is a system account record with group membership and an expiry.
// Groups are kept sorted; GroupDelimiter joins them on output.
type Account struct {
	Username      string
	FullName      string
	Email         string
	Department    string
	Groups        []string
	AccountExpiry time.Time
}

// GroupDelimiter separates group tags inside the groups column.
const GroupDelimiter = ";"

// AccountHeader is the fixed column order for account output.
var AccountHeader = []string{"username", "fullname", "email", "department", "groups", "account_expiry"}

// Values returns the record fields in AccountHeader order.
func (a Account) Values() []string {
	return []string{
		a.Username,
		a.FullName,
		a.Email,
		a.Department,
		strings.Join(a.Groups, GroupDelimiter),
		a.AccountExpiry.Format(DateLayout),
	}
}

package export

import "github.com/orayew2002/usergen/domain"

// Table is a header row plus data rows, all with the same column count.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// FromEmployees lays out roster records in domain.EmployeeHeader order.
func FromEmployees(employees []domain.Employee) Table {
	rows := make([][]string, len(employees))
	for i, e := range employees {
		rows[i] = e.Values()
	}
	return Table{Header: domain.EmployeeHeader, Rows: rows}
}

// FromAccounts lays out account records in domain.AccountHeader order.
func FromAccounts(accounts []domain.Account) Table {
	rows := make([][]string, len(accounts))
	for i, a := range accounts {
		rows[i] = a.Values()
	}
	return Table{Header: domain.AccountHeader, Rows: rows}
}

package orgdata

// A small hierarchy: one top-level employee, two managers, four reports.
var (
	ceo      = Record{ID: 1, FirstName: "John", LastName: "Doe", Salary: 15000, ManagerID: NoManager}
	manager1 = Record{ID: 2, FirstName: "Alice", LastName: "Berton", Salary: 8000, ManagerID: 1}
	manager2 = Record{ID: 3, FirstName: "Jane", LastName: "Suzuka", Salary: 10400, ManagerID: 1}
	manager3 = Record{ID: 4, FirstName: "Bob", LastName: "Smith", Salary: 7000, ManagerID: 2}
	manager4 = Record{ID: 5, FirstName: "Charlie", LastName: "Brown", Salary: 6500, ManagerID: 2}
	manager5 = Record{ID: 6, FirstName: "David", LastName: "Jones", Salary: 6800, ManagerID: 3}
	manager6 = Record{ID: 7, FirstName: "Eve", LastName: "Johnson", Salary: 7200, ManagerID: 3}
)

func hierarchy() []Record {
	return []Record{manager3, manager1, ceo, manager6, manager4, manager5, manager2}
}

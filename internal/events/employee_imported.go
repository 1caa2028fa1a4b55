package events

const (
	TopicEmployeeImported = "hospital.employee.imported"
	TypeEmployeeImported  = "employee.imported"
)

type EmployeeImportedEvent struct {
	ImportID   string `json:"import_id"`
	Added      int    `json:"added"`
	Duplicates int    `json:"duplicates"`
	Invalid    int    `json:"invalid"`
	ImportedBy string `json:"imported_by,omitempty"`
}

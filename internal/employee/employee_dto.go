package employee

type CreateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	CPF            string  `json:"cpf" binding:"required"`
	Password       string  `json:"password" binding:"required,min=6"`
	Role           string  `json:"role" binding:"omitempty,oneof=DIRECAO FUNCIONARIO"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Registration   string  `json:"registration"`
	DepartmentID   *string `json:"department_id" binding:"omitempty,uuid"`
	Position       string  `json:"position"`
	AdmissionDate  string  `json:"admission_date"`
	BirthDate      string  `json:"birth_date"`
	EmploymentType string  `json:"employment_type"`
	WeeklyHours    string  `json:"weekly_hours"`
	Notes          string  `json:"notes"`
	ShiftPolicy    string  `json:"shift_policy"`
	RotationAnchor string  `json:"rotation_anchor"`
}

type UpdateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Registration   string  `json:"registration"`
	DepartmentID   *string `json:"department_id" binding:"omitempty,uuid"`
	Position       string  `json:"position"`
	AdmissionDate  string  `json:"admission_date"`
	BirthDate      string  `json:"birth_date"`
	EmploymentType string  `json:"employment_type"`
	WeeklyHours    string  `json:"weekly_hours"`
	Notes          string  `json:"notes"`
	Status         string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	ShiftPolicy    string  `json:"shift_policy"`
	RotationAnchor string  `json:"rotation_anchor"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	CPF            string  `json:"cpf"`
	Role           string  `json:"role"`
	Status         string  `json:"status"`
	Phone          string  `json:"phone,omitempty"`
	Email          string  `json:"email,omitempty"`
	Registration   string  `json:"registration,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	Position       string  `json:"position,omitempty"`
	AdmissionDate  string  `json:"admission_date,omitempty"`
	BirthDate      string  `json:"birth_date,omitempty"`
	EmploymentType string  `json:"employment_type,omitempty"`
	WeeklyHours    string  `json:"weekly_hours,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	ShiftPolicy    string  `json:"shift_policy"`
	RotationAnchor string  `json:"rotation_anchor,omitempty"`
}

// ImportSummary is returned by the CSV import endpoint.
type ImportSummary struct {
	Imported     int      `json:"imported"`
	Skipped      int      `json:"skipped"`
	Failed       int      `json:"failed"`
	ErrorSamples []string `json:"error_samples,omitempty"`
}

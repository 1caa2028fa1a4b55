package schedule

type GenerateScheduleRequest struct {
	Year         int     `json:"year" binding:"required"`
	Month        int     `json:"month" binding:"required,min=1,max=12"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
}

type SetDayRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Day        int    `json:"day" binding:"required,min=1,max=31"`
	ShiftType  string `json:"shift_type" binding:"required"`
}

type SetDayResponse struct {
	ShiftType string `json:"shift_type"`
	Label     string `json:"label"`
}

type ScheduleMonthResponse struct {
	ID           string  `json:"id"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	DepartmentID *string `json:"department_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type GenerateScheduleResponse struct {
	ScheduleMonthResponse
	EmployeesScheduled int `json:"employees_scheduled"`
	EntriesCreated     int `json:"entries_created"`
}

type ScheduleDayCell struct {
	Day       int    `json:"day"`
	ShiftType string `json:"shift_type"`
	Label     string `json:"label"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
}

type ScheduleRow struct {
	EmployeeID   string            `json:"employee_id"`
	EmployeeName string            `json:"employee_name"`
	Days         []ScheduleDayCell `json:"days"`
}

type ScheduleGridResponse struct {
	Month       ScheduleMonthResponse `json:"month"`
	DaysInMonth int                   `json:"days_in_month"`
	Rows        []ScheduleRow         `json:"rows"`
}

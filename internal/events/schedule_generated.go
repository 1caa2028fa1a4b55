package events

const (
	TopicScheduleGenerated = "hospital.schedule.generated"
	TypeScheduleGenerated  = "schedule.generated"
)

type ScheduleGeneratedEvent struct {
	ScheduleMonthID string  `json:"schedule_month_id"`
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	DepartmentID    *string `json:"department_id,omitempty"`
	Employees       int     `json:"employees"`
	Entries         int     `json:"entries"`
	GeneratedBy     string  `json:"generated_by,omitempty"`
}

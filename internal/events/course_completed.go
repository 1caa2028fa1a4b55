package events

const (
	TopicCourseCompleted = "hospital.course.completed"
	TypeCourseCompleted  = "course.completed"
)

type CourseCompletedEvent struct {
	CompletionID    string `json:"completion_id"`
	CourseID        string `json:"course_id"`
	CourseTitle     string `json:"course_title"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	CompletedAt     string `json:"completed_at"`
	CertificateCode string `json:"certificate_code"`
}

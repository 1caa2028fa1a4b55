package course

type CreateCourseRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	VideoURL      string `json:"video_url" binding:"omitempty,url"`
	DocumentPath  string `json:"document_path"`
	WorkloadHours int    `json:"workload_hours" binding:"omitempty,min=0"`
}

type UpdateCourseRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	VideoURL      string `json:"video_url" binding:"omitempty,url"`
	DocumentPath  string `json:"document_path"`
	WorkloadHours int    `json:"workload_hours" binding:"omitempty,min=0"`
}

type CourseResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
	DocumentPath  string `json:"document_path,omitempty"`
	WorkloadHours int    `json:"workload_hours"`
}

type CompleteCourseRequest struct {
	CompletedAt string `json:"completed_at"`
}

type CompletionResponse struct {
	ID              string `json:"id"`
	CourseID        string `json:"course_id"`
	CourseTitle     string `json:"course_title,omitempty"`
	EmployeeID      string `json:"employee_id"`
	CompletedAt     string `json:"completed_at"`
	CertificateCode string `json:"certificate_code"`
	CertificatePath string `json:"certificate_path,omitempty"`
}

// CertificateValidation is the public shape returned by the validation
// endpoint; no employee document numbers leak through it.
type CertificateValidation struct {
	Valid        bool   `json:"valid"`
	Code         string `json:"code"`
	CourseTitle  string `json:"course_title,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	CompletedAt  string `json:"completed_at,omitempty"`
}

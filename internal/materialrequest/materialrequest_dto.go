package materialrequest

type CreateMaterialRequestRequest struct {
	Sector   string `json:"sector" binding:"required,max=80"`
	Material string `json:"material" binding:"required,max=160"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type DecideMaterialRequestRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVED REJECTED"`
}

type MaterialRequestResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName,omitempty"`
	Sector        string `json:"sector"`
	Material      string `json:"material"`
	Quantity      int    `json:"quantity"`
	Status        string `json:"status"`
	DecidedByID   string `json:"decidedById,omitempty"`
	DecidedByName string `json:"decidedByName,omitempty"`
	DecidedAt     string `json:"decidedAt,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

package position

type CreatePositionRequest struct {
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	Name         string `json:"name" binding:"required"`
	NumberOfJobs int    `json:"number_of_jobs" binding:"required,min=1"`
}

type UpdatePositionRequest struct {
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	Name         string `json:"name" binding:"required"`
	NumberOfJobs int    `json:"number_of_jobs" binding:"required,min=1"`
}

type PositionResponse struct {
	ID             string `json:"id"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	Name           string `json:"name"`
	NumberOfJobs   int    `json:"number_of_jobs"`
}

package department

type CreateDepartmentRequest struct {
	TypeID int64  `json:"type_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

type UpdateDepartmentRequest struct {
	TypeID int64  `json:"type_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

type DepartmentResponse struct {
	ID       string `json:"id"`
	TypeID   int64  `json:"type_id"`
	TypeName string `json:"type_name,omitempty"`
	Name     string `json:"name"`
}

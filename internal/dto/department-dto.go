package dto

type CreateDepartmentDTO struct {
	Name   string  `json:"name" validate:"required,max=64"`
	Leader *string `json:"leader"`
	Phone  *string `json:"phone" validate:"omitempty,max=32"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Status int     `json:"status" validate:"oneof=0 1"`
}

type UpdateDepartmentDTO struct {
	Name   *string `json:"name" validate:"omitempty,max=64"`
	Leader *string `json:"leader"`
	Phone  *string `json:"phone" validate:"omitempty,max=32"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Status *int    `json:"status" validate:"omitempty,oneof=0 1"`
}

package dto

type CreateUserDTO struct {
	Username    string   `json:"username" validate:"required,min=3,max=64"`
	Nickname    string   `json:"nickname" validate:"required,max=64"`
	Password    string   `json:"password" validate:"required,min=8"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Phone       *string  `json:"phone" validate:"omitempty,max=32"`
	DeptID      *uint64  `json:"dept_id"`
	RoleIDs     []uint64 `json:"role_ids"`
	IsSuperuser bool     `json:"is_superuser"`
	IsStaff     bool     `json:"is_staff"`
}

type UpdateUserDTO struct {
	Nickname    *string  `json:"nickname" validate:"omitempty,max=64"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Phone       *string  `json:"phone" validate:"omitempty,max=32"`
	Avatar      *string  `json:"avatar"`
	Status      *int     `json:"status" validate:"omitempty,oneof=0 1"`
	DeptID      *uint64  `json:"dept_id"`
	RoleIDs     []uint64 `json:"role_ids"`
	IsSuperuser *bool    `json:"is_superuser"`
	IsStaff     *bool    `json:"is_staff"`
}

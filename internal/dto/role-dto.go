package dto

type CreateRoleDTO struct {
	Name      string  `json:"name" validate:"required,max=64"`
	DataScope int     `json:"data_scope" validate:"oneof=1 2"`
	Status    int     `json:"status" validate:"oneof=0 1"`
	Remark    *string `json:"remark"`
}

type UpdateRoleDTO struct {
	Name      *string `json:"name" validate:"omitempty,max=64"`
	DataScope *int    `json:"data_scope" validate:"omitempty,oneof=1 2"`
	Status    *int    `json:"status" validate:"omitempty,oneof=0 1"`
	Remark    *string `json:"remark"`
}

type SetRoleMenusDTO struct {
	MenuIDs []uint64 `json:"menu_ids" validate:"required"`
}

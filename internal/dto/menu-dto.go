package dto

type CreateMenuDTO struct {
	Title    string  `json:"title" validate:"required,max=64"`
	Name     string  `json:"name" validate:"required,max=64"`
	Path     *string `json:"path"`
	ParentID *uint64 `json:"parent_id"`
	Sort     int     `json:"sort"`
	Status   int     `json:"status" validate:"oneof=0 1"`
	Perms    *string `json:"perms"`
	Remark   *string `json:"remark"`
}

type UpdateMenuDTO struct {
	Title    *string `json:"title" validate:"omitempty,max=64"`
	Name     *string `json:"name" validate:"omitempty,max=64"`
	Path     *string `json:"path"`
	ParentID *uint64 `json:"parent_id"`
	Sort     *int    `json:"sort"`
	Status   *int    `json:"status" validate:"omitempty,oneof=0 1"`
	Perms    *string `json:"perms"`
	Remark   *string `json:"remark"`
}

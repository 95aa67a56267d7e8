package dto

type PolicyDTO struct {
	Subject string `json:"subject" validate:"required"`
	Object  string `json:"object" validate:"required"`
	Action  string `json:"action" validate:"required"`
}

type GroupingPolicyDTO struct {
	Subject string `json:"subject" validate:"required"`
	Role    string `json:"role" validate:"required"`
}

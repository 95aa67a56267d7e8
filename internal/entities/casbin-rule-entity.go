package entities

// CasbinRule mirrors one row of the casbin_rule table: either a policy tuple
// (p, sub, obj, act) or a role binding (g, sub, role).
type CasbinRule struct {
	ID    uint64 `json:"id" db:"id"`
	PType string `json:"ptype" db:"ptype"`
	V0    string `json:"v0" db:"v0"`
	V1    string `json:"v1" db:"v1"`
	V2    string `json:"v2" db:"v2"`
	V3    string `json:"v3" db:"v3"`
	V4    string `json:"v4" db:"v4"`
	V5    string `json:"v5" db:"v5"`
}

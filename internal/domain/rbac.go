package domain

// EnforceRequest asks whether a role may perform action on resource. It lives
// here so middleware and rbac do not import each other.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

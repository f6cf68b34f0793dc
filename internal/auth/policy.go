package auth

import "strings"

type Role string

const (
	RoleUser    Role = "user"
	RoleTrainer Role = "trainer"
	RoleAthlete Role = "athlete"
	RoleAdmin   Role = "admin"
)

// Permissions is the credentials claim returned by the auth service.
type Permissions struct {
	Role   Role   `json:"role"`
	UserID string `json:"user_id,omitempty"`
}

// Policy decides what a set of permissions may do.
// Creator roles come from config, so admitting a new role needs no code change.
type Policy struct {
	trainingCreators map[Role]bool
}

func NewPolicy(trainingCreatorRoles []string) *Policy {
	creators := make(map[Role]bool, len(trainingCreatorRoles))
	for _, r := range trainingCreatorRoles {
		creators[Role(strings.ToLower(strings.TrimSpace(r)))] = true
	}
	return &Policy{
		trainingCreators: creators,
	}
}

func (p *Policy) CanCreateTraining(perms Permissions) bool {
	return p.trainingCreators[Role(strings.ToLower(string(perms.Role)))]
}

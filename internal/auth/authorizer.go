package auth

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type permissionsGetter interface {
	Permissions(ctx context.Context, authHeader string) (Permissions, error)
}

// Authorizer combines the credentials lookup with the role policy.
type Authorizer struct {
	client  permissionsGetter
	policy  *Policy
	enabled bool
}

// NewAuthorizer returns an authorizer that lets everything through when enabled is false.
func NewAuthorizer(client permissionsGetter, policy *Policy, enabled bool) *Authorizer {
	if !enabled {
		log.Warnln("credentials validation disabled, everyone can create trainings")
	}
	return &Authorizer{
		client:  client,
		policy:  policy,
		enabled: enabled,
	}
}

// CanCreateTraining returns nil when the caller may create trainings, a *DeniedError otherwise.
func (a *Authorizer) CanCreateTraining(ctx context.Context, authHeader string) error {
	if !a.enabled {
		return nil
	}

	perms, err := a.client.Permissions(ctx, authHeader)
	if err != nil {
		return err
	}
	if !a.policy.CanCreateTraining(perms) {
		log.Debugf("role [%s] cannot create trainings", perms.Role)
		return &DeniedError{Detail: MsgCannotCreate}
	}
	return nil
}

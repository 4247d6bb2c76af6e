package permission

import (
	"fmt"
	"sort"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"complaintdesk/internal/domain/permission"
	"complaintdesk/internal/shared/logger"
)

var (
	_ permission.Enforcer = (*Enforcer)(nil)
	_ permission.Lister   = (*Enforcer)(nil)
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies is the role table loaded at startup. Managers inherit every
// agent capability.
func DefaultPolicies() [][]string {
	return [][]string{
		{"customer", string(permission.ResourceComplaint), string(permission.ActionCreate)},
		{"customer", string(permission.ResourceComplaint), string(permission.ActionReadOwn)},
		{"customer", string(permission.ResourceComplaint), string(permission.ActionComment)},

		{"agent", string(permission.ResourceComplaint), string(permission.ActionReadAssigned)},
		{"agent", string(permission.ResourceComplaint), string(permission.ActionUpdateStatus)},
		{"agent", string(permission.ResourceComplaint), string(permission.ActionComment)},
		{"agent", string(permission.ResourceStats), string(permission.ActionRead)},

		{"manager", string(permission.ResourceComplaint), string(permission.ActionReadAll)},
		{"manager", string(permission.ResourceComplaint), string(permission.ActionAssign)},
		{"manager", string(permission.ResourceComplaint), string(permission.ActionArchive)},
		{"manager", string(permission.ResourceAgent), string(permission.ActionRead)},
	}
}

// DefaultRoleLinks makes the first role of each pair inherit the second.
func DefaultRoleLinks() [][]string {
	return [][]string{
		{"manager", "agent"},
	}
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	logger   logger.Interface
}

// NewEnforcer builds an in-memory casbin enforcer from the RBAC model and the
// given policies and role links.
func NewEnforcer(policies, links [][]string, log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if len(policies) > 0 {
		if _, err := enforcer.AddPolicies(policies); err != nil {
			return nil, fmt.Errorf("failed to add policies: %w", err)
		}
	}
	if len(links) > 0 {
		if _, err := enforcer.AddGroupingPolicies(links); err != nil {
			return nil, fmt.Errorf("failed to add role links: %w", err)
		}
	}

	log.Infow("permission policies loaded", "policies", len(policies), "role_links", len(links))

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// NewDefaultEnforcer is NewEnforcer over DefaultPolicies and DefaultRoleLinks.
func NewDefaultEnforcer(log logger.Interface) (*Enforcer, error) {
	return NewEnforcer(DefaultPolicies(), DefaultRoleLinks(), log)
}

func (e *Enforcer) Enforce(role string, resource permission.Resource, action permission.Action) (bool, error) {
	allowed, err := e.enforcer.Enforce(role, string(resource), string(action))
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

// PermissionsForRole lists the capabilities granted to role, inherited ones
// included, as sorted "resource:action" strings.
func (e *Enforcer) PermissionsForRole(role string) ([]string, error) {
	rules, err := e.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions for role: %w", err)
	}

	seen := make(map[string]struct{}, len(rules))
	perms := make([]string, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		key := permission.Key(permission.Resource(rule[1]), permission.Action(rule[2]))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		perms = append(perms, key)
	}
	sort.Strings(perms)
	return perms, nil
}

// Package permission names the advisory capabilities each role holds.
package permission

type Resource string

type Action string

const (
	ResourceComplaint Resource = "complaint"
	ResourceAgent     Resource = "agent"
	ResourceStats     Resource = "stats"
)

const (
	ActionCreate       Action = "create"
	ActionReadOwn      Action = "read_own"
	ActionReadAssigned Action = "read_assigned"
	ActionReadAll      Action = "read_all"
	ActionUpdateStatus Action = "update_status"
	ActionAssign       Action = "assign"
	ActionComment      Action = "comment"
	ActionArchive      Action = "archive"
	ActionRead         Action = "read"
)

// Enforcer answers whether a role may perform action on resource. Results
// are advisory; service methods never consult it.
type Enforcer interface {
	Enforce(role string, resource Resource, action Action) (bool, error)
}

// Lister reports every capability a role holds, inherited ones included.
type Lister interface {
	PermissionsForRole(role string) ([]string, error)
}

// Key formats a capability as "resource:action".
func Key(resource Resource, action Action) string {
	return string(resource) + ":" + string(action)
}

// Allowed treats an enforcement error as a denial.
func Allowed(e Enforcer, role string, resource Resource, action Action) bool {
	ok, err := e.Enforce(role, resource, action)
	return err == nil && ok
}

package rbac

// Role is a caller's authorization level. Exactly one role is attached to a
// caller identity at evaluation time; the zero value means unauthenticated.
type Role string

// RoleAbsent is the zero Role, representing an unauthenticated caller.
// Evaluator checks never pass for it.
const RoleAbsent Role = ""

// Roles used by the business-management application.
const (
	RoleAdmin   Role = "ADMIN"
	RoleUser    Role = "USER"
	RoleTecnico Role = "TECNICO"
)

// Resource names a protected domain object class.
type Resource string

// Resources of the business-management application.
const (
	ResourceClients      Resource = "clientes"
	ResourceUsers        Resource = "usuarios"
	ResourceServiceTypes Resource = "tipos-de-servicio"
)

// Action names an operation performable on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Check is a single (resource, action) pair submitted for evaluation.
// Checks are stateless and constructed per call site.
type Check struct {
	Resource Resource `yaml:"resource"`
	Action   Action   `yaml:"action"`
}

// NewCheck is a convenience constructor for inline check lists.
func NewCheck(resource Resource, action Action) Check {
	return Check{Resource: resource, Action: action}
}

// Rule grants a (resource, action) pair to a set of roles. At most one rule
// may exist per pair; the catalog constructor enforces this.
type Rule struct {
	Resource Resource `yaml:"resource"`
	Action   Action   `yaml:"action"`
	Roles    []Role   `yaml:"roles"`
}

package model

// Permission resources and actions form a fixed vocabulary. Every permission
// string is "resource:action"; report supports only read.
const (
	ResourceUser     = "user"
	ResourceOrder    = "order"
	ResourceProduct  = "product"
	ResourceCustomer = "customer"
	ResourceReport   = "report"
)

const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Permission builds a "resource:action" string.
func Permission(resource, action string) string {
	return resource + ":" + action
}

// AllPermissions returns the full 17-entry permission vocabulary in its
// canonical order: create/read/update/delete for user, order, product and
// customer, then report:read.
func AllPermissions() []string {
	actions := []string{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
	resources := []string{ResourceUser, ResourceOrder, ResourceProduct, ResourceCustomer}

	perms := make([]string, 0, len(resources)*len(actions)+1)
	for _, r := range resources {
		for _, a := range actions {
			perms = append(perms, Permission(r, a))
		}
	}
	perms = append(perms, Permission(ResourceReport, ActionRead))
	return perms
}

// OperatorPermissions returns the reduced permission set granted to the
// seeded operator account.
func OperatorPermissions() []string {
	return []string{
		Permission(ResourceOrder, ActionRead),
		Permission(ResourceOrder, ActionUpdate),
		Permission(ResourceProduct, ActionRead),
		Permission(ResourceCustomer, ActionRead),
	}
}

// IsKnownPermission reports whether the string belongs to the fixed
// permission vocabulary.
func IsKnownPermission(permission string) bool {
	for _, p := range AllPermissions() {
		if p == permission {
			return true
		}
	}
	return false
}

package user

import (
	"careadmin/internal/admin"
	"careadmin/internal/transition"
)

// PermittedBy is the bulk-batch authorization predicate: non-superadmins may
// not alter admin accounts. Rejected items are skipped, not failed, so mixed
// batches still go through for the permitted subset.
func PermittedBy(adm *admin.Admin) func(transition.Entity) bool {
	return func(ent transition.Entity) bool {
		u, ok := ent.(*User)
		if !ok {
			return false
		}
		return !u.IsPrivileged() || adm.IsSuperadmin()
	}
}

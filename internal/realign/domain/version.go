package domain

import "slices"

// Fields reported by DiffVersions.
const (
	FieldName    = "name"
	FieldOrgType = "org_type"
	FieldRoles   = "roles"
)

// DiffVersions lists which fields differ between two versions, in a fixed
// order. Role order matters.
func DiffVersions(a, b Version) []string {
	var changed []string
	if a.Org.Name != b.Org.Name {
		changed = append(changed, FieldName)
	}
	if a.Org.OrgType != b.Org.OrgType {
		changed = append(changed, FieldOrgType)
	}
	if !slices.Equal(a.Roles, b.Roles) {
		changed = append(changed, FieldRoles)
	}
	return changed
}

// RestoredName is the organization name given to a copy made from a version.
func RestoredName(name string) string {
	return name + " (Restored)"
}

// VersionOf snapshots r as a new version recorded for accessedBy.
func VersionOf(r Realignment, id, accessedBy, note string) Version {
	return Version{
		ID:            id,
		RealignmentID: r.ID,
		Org:           r.Org,
		Roles:         slices.Clone(r.Roles),
		AccessedBy:    accessedBy,
		AccessedAt:    r.UpdatedAt,
		Note:          note,
	}
}

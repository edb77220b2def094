package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrMissingOrgName = errors.New("domain: organization name is required")
	ErrMissingOrgType = errors.New("domain: organization type is required")
	ErrInvalidRole    = errors.New("domain: invalid role")
)

// TagCounts tallies roles per tag. Untagged roles are not counted.
type TagCounts struct {
	Critical  int `json:"critical"`
	Open      int `json:"open"`
	Redundant int `json:"redundant"`
}

func TagSummary(roles []Role) TagCounts {
	var c TagCounts
	for _, r := range roles {
		switch r.Tag {
		case TagCritical:
			c.Critical++
		case TagOpen:
			c.Open++
		case TagRedundant:
			c.Redundant++
		}
	}
	return c
}

// FilterRoles keeps roles carrying tag. An empty tag keeps everything.
func FilterRoles(roles []Role, tag RoleTag) []Role {
	if tag == TagNone {
		return slices.Clone(roles)
	}
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if r.Tag == tag {
			out = append(out, r)
		}
	}
	return out
}

// RoleSort names an ordering accepted by SortRoles.
type RoleSort string

const (
	SortNameAsc  RoleSort = "name-asc"
	SortNameDesc RoleSort = "name-desc"
	SortTag      RoleSort = "tag"
)

// SortRoles returns a sorted copy of roles. Unknown orders keep the input
// order. Ties are broken by id so the result is deterministic.
func SortRoles(roles []Role, by RoleSort) []Role {
	out := slices.Clone(roles)

	var cmp func(a, b Role) int
	switch by {
	case SortNameAsc:
		cmp = func(a, b Role) int { return compareNames(a, b) }
	case SortNameDesc:
		cmp = func(a, b Role) int { return compareNames(b, a) }
	case SortTag:
		cmp = func(a, b Role) int {
			if c := strings.Compare(string(a.Tag), string(b.Tag)); c != 0 {
				return c
			}
			return compareNames(a, b)
		}
	default:
		return out
	}

	slices.SortStableFunc(out, cmp)
	return out
}

func compareNames(a, b Role) int {
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// ValidateRole checks a single role row.
func ValidateRole(r Role) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRole)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidRole, r.ID)
	}
	if !r.Tag.Valid() {
		return fmt.Errorf("%w: %s: unknown tag %q", ErrInvalidRole, r.ID, r.Tag)
	}
	return nil
}

// ValidateRoles checks every role and rejects duplicate ids.
func ValidateRoles(roles []Role) error {
	seen := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if err := ValidateRole(r); err != nil {
			return err
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidRole, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

// ValidateOrg checks the organization header of a realignment.
func ValidateOrg(o OrgData) error {
	if strings.TrimSpace(o.Name) == "" {
		return ErrMissingOrgName
	}
	if strings.TrimSpace(o.OrgType) == "" {
		return ErrMissingOrgType
	}
	return nil
}

// ImportDocument is the JSON shape of an exported realignment.
type ImportDocument struct {
	Organization struct {
		Name    string `json:"name"`
		OrgType string `json:"orgType"`
	} `json:"organization"`
	Roles []Role `json:"roles"`
}

// Org returns the organization header of the document.
func (d ImportDocument) Org() OrgData {
	return OrgData{Name: strings.TrimSpace(d.Organization.Name), OrgType: strings.TrimSpace(d.Organization.OrgType)}
}

// ValidateImport checks an uploaded document before it is stored.
func ValidateImport(d ImportDocument) error {
	if err := ValidateOrg(d.Org()); err != nil {
		return err
	}
	return ValidateRoles(d.Roles)
}

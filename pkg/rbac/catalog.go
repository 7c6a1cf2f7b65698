package rbac

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Catalog is the static permission matrix mapping (resource, action) pairs to
// the roles allowed to perform them. It is built once at process start and is
// immutable afterwards, so it may be shared across any number of concurrent
// requests without locking.
//
// Lookup is total: a pair with no rule resolves to an empty role set, which
// the evaluator treats as denied to everyone.
type Catalog struct {
	rules map[Check][]Role
	order []Check
}

// NewCatalog builds a catalog from the given rules. It rejects rules with an
// empty resource or action and duplicate (resource, action) pairs; both are
// configuration defects, not runtime conditions.
func NewCatalog(rules []Rule) (*Catalog, error) {
	c := &Catalog{
		rules: make(map[Check][]Role, len(rules)),
		order: make([]Check, 0, len(rules)),
	}

	for _, r := range rules {
		if r.Resource == "" {
			return nil, fmt.Errorf("%w: rule for action %q", ErrEmptyResource, r.Action)
		}
		if r.Action == "" {
			return nil, fmt.Errorf("%w: rule for resource %q", ErrEmptyAction, r.Resource)
		}

		key := Check{Resource: r.Resource, Action: r.Action}
		if _, exists := c.rules[key]; exists {
			return nil, fmt.Errorf("%w: (%s, %s)", ErrDuplicateRule, r.Resource, r.Action)
		}

		roles := make([]Role, len(r.Roles))
		copy(roles, r.Roles)
		c.rules[key] = roles
		c.order = append(c.order, key)
	}

	return c, nil
}

// Lookup returns the set of roles allowed to perform action on resource.
// The returned slice is a copy and safe to modify. An unmatched pair yields
// an empty set, never an error.
func (c *Catalog) Lookup(resource Resource, action Action) []Role {
	roles, ok := c.rules[Check{Resource: resource, Action: action}]
	if !ok {
		return nil
	}
	return slices.Clone(roles)
}

// Allows reports whether role is a member of the allowed set for the pair.
// It avoids the copy Lookup makes and is what the evaluator uses internally.
func (c *Catalog) Allows(role Role, resource Resource, action Action) bool {
	return slices.Contains(c.rules[Check{Resource: resource, Action: action}], role)
}

// Rules enumerates all rules in declaration order, for diagnostics and tests.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, Rule{
			Resource: key.Resource,
			Action:   key.Action,
			Roles:    slices.Clone(c.rules[key]),
		})
	}
	return out
}

// catalogFile is the on-disk catalog format. The same file is consumed by the
// web frontend so that UI-side advisory checks and server-side enforcement
// cannot drift apart.
type catalogFile struct {
	Rules []Rule `yaml:"rules"`
}

// ParseCatalog builds a catalog from YAML catalog data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrInvalidCatalogFile, err)
	}
	return NewCatalog(f.Rules)
}

// LoadCatalogFile reads and parses a YAML catalog file.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidCatalogFile, err)
	}
	return ParseCatalog(data)
}

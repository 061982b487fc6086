package query

import "fmt"

// Condition is one WHERE clause fragment. Implementations emit SQL using
// Spanner's named parameter format (@paramName); paramIndex keeps generated
// names unique across a statement.
type Condition interface {
	SQL(paramIndex int) (string, map[string]any)
}

type eqCondition struct {
	field string
	value any
}

// Eq builds an equality condition: Eq("status", "Live") emits "status = @p0".
func Eq(field string, value any) Condition {
	return &eqCondition{field: field, value: value}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]any) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s = @%s", c.field, name), map[string]any{name: c.value}
}

type neqCondition struct {
	field string
	value any
}

// Neq builds an inequality condition: Neq("status", "Draft") emits
// "status != @p0".
func Neq(field string, value any) Condition {
	return &neqCondition{field: field, value: value}
}

func (c *neqCondition) SQL(paramIndex int) (string, map[string]any) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s != @%s", c.field, name), map[string]any{name: c.value}
}

type inCondition struct {
	field  string
	values []string
}

// In builds a membership condition against a string list using Spanner's
// UNNEST form: In("status", []string{"Draft", "Enquiry"}) emits
// "status IN UNNEST(@p0)".
func In(field string, values []string) Condition {
	return &inCondition{field: field, values: values}
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]any) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s IN UNNEST(@%s)", c.field, name), map[string]any{name: c.values}
}

type isNullCondition struct {
	field string
}

// IsNull builds a NULL check: IsNull("icon") emits "icon IS NULL".
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

func (c *isNullCondition) SQL(int) (string, map[string]any) {
	return fmt.Sprintf("%s IS NULL", c.field), map[string]any{}
}

type isNotNullCondition struct {
	field string
}

// IsNotNull builds a NOT NULL check.
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

func (c *isNotNullCondition) SQL(int) (string, map[string]any) {
	return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]any{}
}

type rawCondition struct {
	fragment string
	params   map[string]any
}

// Raw wraps a hand-written fragment with explicitly named parameters, for
// clauses the typed conditions cannot express (JSON path predicates and the
// like). The caller owns parameter naming.
func Raw(fragment string, params map[string]any) Condition {
	return &rawCondition{fragment: fragment, params: params}
}

func (c *rawCondition) SQL(int) (string, map[string]any) {
	if c.params == nil {
		return c.fragment, map[string]any{}
	}
	return c.fragment, c.params
}

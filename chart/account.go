// Package chart models the hierarchical chart of accounts that statement
// generation operates on. Accounts form a tree: each account owns an ordered
// list of children and carries the classification info (balance normality and
// statement membership) that drives aggregation signs and report selection.
//
// Name uniqueness is only enforced among siblings. Lookups by name resolve to
// the first match of a pre-order walk, so duplicate names elsewhere in the
// tree alias to whichever occurrence the walk visits first.
package chart

// Kind is the balance normality of an account: whether its natural increasing
// direction is a credit or a debit posting.
type Kind int

const (
	NormalDebit Kind = iota
	NormalCredit
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case NormalCredit:
		return "Credit"
	case NormalDebit:
		return "Debit"
	default:
		return "Unknown"
	}
}

// Statement selects which report an account belongs to.
type Statement int

const (
	BalanceSheet Statement = iota
	IncomeStatement
)

// String returns the string representation of the statement type.
func (s Statement) String() string {
	switch s {
	case BalanceSheet:
		return "BalanceSheet"
	case IncomeStatement:
		return "IncomeStatement"
	default:
		return "Unknown"
	}
}

// Info is the classification attached to an account. Children created during
// path insertion inherit their parent's Info.
type Info struct {
	Kind      Kind
	Statement Statement
}

// Account is a node in the chart of accounts. It owns its children; no parent
// back-references exist (subaccount checks walk down from an ancestor).
type Account struct {
	Name     string
	Info     Info
	Children []*Account
}

// NewRoot creates a childless root account.
func NewRoot(name string, info Info) *Account {
	return &Account{Name: name, Info: info}
}

// Child returns the direct child with the given name, or nil.
func (a *Account) Child(name string) *Account {
	for _, c := range a.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find returns the first account in a pre-order walk of this subtree (the
// account itself first) whose name matches, or nil.
func (a *Account) Find(name string) *Account {
	if a.Name == name {
		return a
	}
	for _, c := range a.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// IsSubaccount reports whether candidate resolves by name among the strict
// descendants of this account. The check is by name, matching Find semantics,
// so duplicate names carry the same first-match aliasing.
func (a *Account) IsSubaccount(candidate *Account) bool {
	if candidate == nil {
		return false
	}
	for _, c := range a.Children {
		if c.Find(candidate.Name) != nil {
			return true
		}
	}
	return false
}

// HasChildWithStatement reports whether any direct child is classified under
// the given statement.
func (a *Account) HasChildWithStatement(s Statement) bool {
	for _, c := range a.Children {
		if c.Info.Statement == s {
			return true
		}
	}
	return false
}

// Reduce folds a subtree depth-first, parent before children, children left to
// right, threading a single accumulated value.
func Reduce[T any](a *Account, seed T, visit func(T, *Account) T) T {
	acc := visit(seed, a)
	for _, c := range a.Children {
		acc = Reduce(c, acc, visit)
	}
	return acc
}

// Walk traverses a subtree depth-first with distinct pre- and post-visit
// callbacks threading a value: enter runs before descending into children,
// leave runs after all children have been visited.
func Walk[T any](a *Account, seed T, enter func(T, *Account) T, leave func(T, *Account) T) T {
	v := enter(seed, a)
	for _, c := range a.Children {
		v = Walk(c, v, enter, leave)
	}
	return leave(v, a)
}

// Flatten returns every account of a subtree exactly once, in pre-order.
func Flatten(a *Account) []*Account {
	return Reduce(a, []*Account(nil), func(acc []*Account, node *Account) []*Account {
		return append(acc, node)
	})
}

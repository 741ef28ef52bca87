//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_record_store.go -package=mocks

// Package store exposes the generic record store the chat core persists
// through: named collections of schemaless records with filter, order and
// limit semantics. The core owns no authoritative cache on top of it; every
// invariant check re-reads the store.
package store

import "context"

// Record is a schemaless document. Implementations round-trip records
// through JSON, so values read back as string, float64, bool or []any;
// use the typed accessors in values.go instead of direct assertions.
type Record map[string]any

type Op string

const (
	// OpEq matches scalar equality, or element-wise equality for slices.
	OpEq Op = "eq"
	// OpContains matches when a slice field contains the given scalar.
	OpContains Op = "contains"
)

type Filter struct {
	Field string
	Op    Op
	Value any
}

type Order struct {
	Field string
	Desc  bool
}

// Query combines filters (AND semantics), ordering and a limit.
// A Desc ordering mirrors the Asc one exactly: full ties under OrderBy keep
// insertion order ascending and reverse-insertion order descending.
type Query struct {
	Where   []Filter
	OrderBy []Order
	Limit   int // <= 0 means no limit
}

// IRecordStore is the contract of the external record service.
// No transactions span collections and no compare-and-swap is offered;
// read-modify-write callers inherit the resulting races.
type IRecordStore interface {
	Create(ctx context.Context, collection string, rec Record) (Record, error)
	Find(ctx context.Context, collection string, q Query) ([]Record, error)
	FindOne(ctx context.Context, collection string, q Query) (Record, bool, error)
	Update(ctx context.Context, collection, id string, partial Record) (Record, error)
	Delete(ctx context.Context, collection, id string) error
}

func Where(field string, op Op, value any) Filter {
	return Filter{Field: field, Op: op, Value: value}
}

// Package query wraps the parts of https://github.com/mongodb/mongo-go-driver the
// stores need. Read the testcases for usage of each method.
package query

import (
	"fmt"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

type patchOp struct {
	patchMany bool
}

// PatchOp is an alias for functional argument
type PatchOp func(*patchOp)

// WithPatchMany specifies patchMany setting. To patch all entries selected, set patchMany = true.
func WithPatchMany(patchMany bool) PatchOp {
	return func(o *patchOp) {
		o.patchMany = patchMany
	}
}

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(c ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(c ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	Count(c ctx.Ctx, table domain.Table, selector interface{}) (int, error)

	// Upsert replaces the entry matching selector, or inserts it when missing
	Upsert(c ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Replace swaps the entry matching selector for replacement, it never inserts.
	// Return ErrNotFound if selector does not match any documents
	Replace(c ctx.Ctx, table domain.Table, selector, replacement interface{}) error

	// Search sort order by `sort` argument (ex "createdAt" ascending, or "-createdAt" descending)
	// if `sort` is "", the MongoDB does not guarantee the order of query results.
	Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// SearchNSorts sort with multiple fields, keep the order of compound indexes
	SearchNSorts(c ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error

	// Patch $set the fields of update on the matched entry.
	// Return ErrNotFound if selector does not match any documents
	Patch(c ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// Remove remove an entry from the table
	// Return ErrNotFound if selector does not match any documents
	Remove(c ctx.Ctx, table domain.Table, selector interface{}) error
}

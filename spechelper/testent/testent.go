// Package testent contains the shared test entity of the query operator suites.
package testent

import (
	"slices"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/testcase"

	"go.llib.dev/querykit/pkg/compare"
)

// Grocery is a priced item used as the element type in the operator test suites.
// It implements both the comparison and the replication capability.
type Grocery struct {
	Name string
	Cost float64
	Tags []string
}

// Compare orders groceries by name, then by cost.
func (g Grocery) Compare(oth Grocery) int {
	if cmp := compare.Strings(g.Name, oth.Name); !compare.IsEqual(cmp) {
		return cmp
	}
	return compare.Numbers(g.Cost, oth.Cost)
}

// Clone returns an independent deep copy of the grocery.
func (g Grocery) Clone() Grocery {
	g.Tags = slices.Clone(g.Tags)
	return g
}

func MakeGrocery(tb testing.TB) Grocery {
	t := tb.(*testcase.T)
	return Grocery{
		Name: randomdata.SillyName(),
		Cost: t.Random.Float64() * 100,
	}
}

func MakeGroceries(tb testing.TB, n int) []Grocery {
	vs := make([]Grocery, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, MakeGrocery(tb))
	}
	return vs
}

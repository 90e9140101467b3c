package pkg

import (
	"sort"

	sets "github.com/deckarep/golang-set"
)

// PidSet collects distinct pids, e.g. the ones a kill loop has signalled.
type PidSet struct {
	internal sets.Set
}

func NewPidSet() *PidSet {
	return &PidSet{
		internal: sets.NewSet(),
	}
}

// Add reports whether pid was not in the set yet.
func (set *PidSet) Add(pid int32) bool {
	return set.internal.Add(pid)
}

func (set *PidSet) Len() int {
	return set.internal.Cardinality()
}

// Slice returns the pids in ascending order.
func (set *PidSet) Slice() []int32 {
	pids := make([]int32, 0, set.Len())
	for elem := range set.internal.Iter() {
		pids = append(pids, elem.(int32))
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })
	return pids
}

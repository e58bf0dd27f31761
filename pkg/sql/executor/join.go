// pkg/sql/executor/join.go
package executor

import (
	"sort"
	"strings"

	"github.com/tnm/shql/pkg/predicate"
	"github.com/tnm/shql/pkg/session"
	"github.com/tnm/shql/pkg/storage"
)

// sortMergeJoin performs one join step: sort both sides on the
// extracted equi-join key and merge, expanding any tied key group as a
// cartesian product of its two runs. Both sides are round-tripped
// through the statement's scratch namespace so a join step has the
// same on-disk shape whether its input is a base table or the output
// of an earlier join.
func (e *Executor) sortMergeJoin(sess *session.Session, left, right [][]string, pairs []predicate.JoinKeyPair) ([][]string, error) {
	leftPath, err := sess.Scratch.NewRelation(toRecords(left))
	if err != nil {
		return nil, err
	}
	rightPath, err := sess.Scratch.NewRelation(toRecords(right))
	if err != nil {
		return nil, err
	}

	leftRows, err := sess.Scratch.LoadRelation(leftPath)
	if err != nil {
		return nil, err
	}
	rightRows, err := sess.Scratch.LoadRelation(rightPath)
	if err != nil {
		return nil, err
	}

	leftIdx := leftIndexes(pairs)
	rightIdx := rightIndexes(pairs)

	leftSorted := sortByKeys(recordsToRows(leftRows), leftIdx)
	rightSorted := sortByKeys(recordsToRows(rightRows), rightIdx)

	return mergeJoin(leftSorted, rightSorted, leftIdx, rightIdx), nil
}

func toRecords(rows [][]string) []storage.Record {
	recs := make([]storage.Record, len(rows))
	for i, r := range rows {
		recs[i] = storage.Record(r)
	}
	return recs
}

func leftIndexes(pairs []predicate.JoinKeyPair) []int {
	out := make([]int, len(pairs))
	for i, p := range pairs {
		out[i] = p.LeftIndex
	}
	return out
}

func rightIndexes(pairs []predicate.JoinKeyPair) []int {
	out := make([]int, len(pairs))
	for i, p := range pairs {
		out[i] = p.RightIndex
	}
	return out
}

// keyFor builds the composite join key of row at the given positions.
// The field separator is a control character that never occurs in
// TAB-delimited table data.
func keyFor(row []string, idxs []int) string {
	parts := make([]string, len(idxs))
	for i, idx := range idxs {
		if idx < len(row) {
			parts[i] = row[idx]
		}
	}
	return strings.Join(parts, "\x1f")
}

func sortByKeys(rows [][]string, idxs []int) [][]string {
	sort.SliceStable(rows, func(i, j int) bool {
		return keyFor(rows[i], idxs) < keyFor(rows[j], idxs)
	})
	return rows
}

// mergeJoin performs the merge phase: a two-pointer scan over both
// sorted sides, widening to the full run of a tied key on each side
// before emitting their cartesian product, matching plain equi-join
// semantics for duplicate keys.
func mergeJoin(left, right [][]string, leftIdx, rightIdx []int) [][]string {
	var out [][]string
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		lk := keyFor(left[i], leftIdx)
		rk := keyFor(right[j], rightIdx)
		switch {
		case lk < rk:
			i++
		case lk > rk:
			j++
		default:
			iEnd := i
			for iEnd < len(left) && keyFor(left[iEnd], leftIdx) == lk {
				iEnd++
			}
			jEnd := j
			for jEnd < len(right) && keyFor(right[jEnd], rightIdx) == rk {
				jEnd++
			}
			for a := i; a < iEnd; a++ {
				for b := j; b < jEnd; b++ {
					row := make([]string, 0, len(left[a])+len(right[b]))
					row = append(row, left[a]...)
					row = append(row, right[b]...)
					out = append(out, row)
				}
			}
			i, j = iEnd, jEnd
		}
	}
	return out
}

package emitters

import (
	"strconv"
	"strings"
)

// BranchRef names one arm of a control block.
type BranchRef struct {
	Block  int
	Branch int
}

func blockName(index int, suffix string) string {
	return "$$block_" + strconv.Itoa(index) + "_" + suffix
}

// BlockUpdate returns the function re-evaluating block visibility.
func BlockUpdate(index int) string {
	return blockName(index, "update")
}

// BlockClear returns the function removing the nodes of a block.
func BlockClear(index int) string {
	return blockName(index, "clear")
}

// BlockBranch returns the variable holding the live branch of a block.
func BlockBranch(index int) string {
	return blockName(index, "branch")
}

// BlockNodes returns the variable holding the inserted root nodes.
func BlockNodes(index int) string {
	return blockName(index, "nodes")
}

// BranchSelector renders the expression choosing a branch. An empty
// condition marks the final else branch; without one the selector yields
// -1 when no condition holds.
func BranchSelector(conditions []string) string {
	var b strings.Builder

	fallback := "-1"

	for i, cond := range conditions {
		if cond == "" {
			fallback = strconv.Itoa(i)

			break
		}

		b.WriteString("(" + cond + ") ? " + strconv.Itoa(i) + " : ")
	}

	b.WriteString(fallback)

	return b.String()
}

// Guard renders the condition under which a node inside blocks exists.
func Guard(chain []BranchRef) string {
	parts := make([]string, 0, len(chain))
	for _, ref := range chain {
		parts = append(parts, BlockBranch(ref.Block)+" === "+strconv.Itoa(ref.Branch))
	}

	return strings.Join(parts, " && ")
}

// Guarded wraps stmt so it only runs while the chain is live.
func Guarded(chain []BranchRef, stmt string) string {
	if len(chain) == 0 {
		return stmt
	}

	return "if (" + Guard(chain) + ") " + stmt
}

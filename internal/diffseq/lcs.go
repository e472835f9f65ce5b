// Package diffseq computes a longest-common-subsequence alignment between
// two word sequences and turns it into a left-to-right KEEP/REMOVE/ADD
// operation stream that downstream reconciliation consumes to preserve
// per-word timing across a text rewrite.
package diffseq

// LCSResult holds the outcome of ComputeLCS: the common subsequence itself
// and, for each side, the indices of the words that belong to it.
type LCSResult struct {
	Words    []string
	AIndices []int
	BIndices []int
}

// ComputeLCS returns the longest common subsequence of a and b via a
// standard DP table with backtrack. Ties during backtrack prefer moving up
// (decrementing i) when dp[i-1][j] > dp[i][j-1], otherwise move left. This
// determinism matters: downstream reconciliation depends on which side
// "owns" a difference.
func ComputeLCS(a, b []string) LCSResult {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	var words []string
	var aIdx, bIdx []int

	i, j := n, m
	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			words = append(words, a[i-1])
			aIdx = append(aIdx, i-1)
			bIdx = append(bIdx, j-1)
			i--
			j--
		} else if dp[i-1][j] > dp[i][j-1] {
			i--
		} else {
			j--
		}
	}

	reverseStrings(words)
	reverseInts(aIdx)
	reverseInts(bIdx)

	return LCSResult{Words: words, AIndices: aIdx, BIndices: bIdx}
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// OpKind discriminates an Op.
type OpKind int

const (
	OpKeep OpKind = iota
	OpRemove
	OpAdd
)

// Op is one step of a diff walk: a kept word present in both sequences at
// the given positions, a removed word only in the original, or an added
// word only in the patched sequence.
type Op struct {
	Kind     OpKind
	OrigIdx  int // valid for Keep, Remove
	PatchIdx int // valid for Keep, Add
	Word     string
}

// ComputeDiff walks original and patched left-to-right, consuming both
// arrays against their LCS alignment: at each step, if both pointers sit on
// their next LCS-kept index, emit Keep and advance both; else if the
// original pointer is on a non-kept position, emit Remove and advance it;
// else emit Add and advance the patched pointer. Once both pointers are
// past the LCS but arrays remain, the residual is emitted as Remove/Add.
func ComputeDiff(original, patched []string) []Op {
	lcs := ComputeLCS(original, patched)

	var ops []Op
	oi, pi, li := 0, 0, 0
	nl := len(lcs.AIndices)

	for oi < len(original) || pi < len(patched) {
		if li < nl && oi == lcs.AIndices[li] && pi == lcs.BIndices[li] {
			ops = append(ops, Op{Kind: OpKeep, OrigIdx: oi, PatchIdx: pi, Word: lcs.Words[li]})
			oi++
			pi++
			li++
			continue
		}

		if oi < len(original) && (li >= nl || oi < lcs.AIndices[li]) {
			ops = append(ops, Op{Kind: OpRemove, OrigIdx: oi, Word: original[oi]})
			oi++
			continue
		}

		if pi < len(patched) {
			ops = append(ops, Op{Kind: OpAdd, PatchIdx: pi, Word: patched[pi]})
			pi++
			continue
		}

		// Residual: original pointer remains past the LCS window.
		if oi < len(original) {
			ops = append(ops, Op{Kind: OpRemove, OrigIdx: oi, Word: original[oi]})
			oi++
		}
	}

	return ops
}

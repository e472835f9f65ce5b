package diffseq

import "testing"

func TestComputeLCS(t *testing.T) {
	a := []string{"sage", "maker", "rocks"}
	b := []string{"SageMaker", "rocks"}

	lcs := ComputeLCS(a, b)
	if len(lcs.Words) != 1 || lcs.Words[0] != "rocks" {
		t.Fatalf("lcs.Words = %v, want [rocks]", lcs.Words)
	}
	if lcs.AIndices[0] != 2 || lcs.BIndices[0] != 1 {
		t.Errorf("lcs indices = %v/%v, want 2/1", lcs.AIndices, lcs.BIndices)
	}
}

func TestComputeLCS_Identical(t *testing.T) {
	a := []string{"a", "b", "c"}
	lcs := ComputeLCS(a, a)
	if len(lcs.Words) != 3 {
		t.Fatalf("expected full LCS of length 3, got %v", lcs.Words)
	}
}

func TestComputeDiff_SingleWordSwap(t *testing.T) {
	original := []string{"set", "the", "um", "main", "execution"}
	patched := []string{"set", "the", "min", "execution"}

	ops := ComputeDiff(original, patched)

	var kinds []OpKind
	for _, op := range ops {
		kinds = append(kinds, op.Kind)
	}

	// "set" and "the" kept, "um"/"main" removed, "min" added, "execution" kept.
	keepCount, removeCount, addCount := 0, 0, 0
	for _, op := range ops {
		switch op.Kind {
		case OpKeep:
			keepCount++
		case OpRemove:
			removeCount++
		case OpAdd:
			addCount++
		}
	}
	if keepCount != 3 {
		t.Errorf("keepCount = %d, want 3", keepCount)
	}
	if removeCount != 2 {
		t.Errorf("removeCount = %d, want 2", removeCount)
	}
	if addCount != 1 {
		t.Errorf("addCount = %d, want 1", addCount)
	}
}

func TestComputeDiff_MultiWordCollapse(t *testing.T) {
	original := []string{"sage", "maker", "rocks"}
	patched := []string{"SageMaker", "rocks"}

	ops := ComputeDiff(original, patched)

	if len(ops) != 4 {
		t.Fatalf("expected 4 ops, got %d: %+v", len(ops), ops)
	}
	if ops[0].Kind != OpRemove || ops[0].Word != "sage" {
		t.Errorf("ops[0] = %+v, want Remove sage", ops[0])
	}
	if ops[1].Kind != OpRemove || ops[1].Word != "maker" {
		t.Errorf("ops[1] = %+v, want Remove maker", ops[1])
	}
	if ops[2].Kind != OpAdd || ops[2].Word != "SageMaker" {
		t.Errorf("ops[2] = %+v, want Add SageMaker", ops[2])
	}
	if ops[3].Kind != OpKeep || ops[3].Word != "rocks" {
		t.Errorf("ops[3] = %+v, want Keep rocks", ops[3])
	}
}

func TestComputeDiff_Empty(t *testing.T) {
	ops := ComputeDiff(nil, nil)
	if len(ops) != 0 {
		t.Errorf("expected no ops for empty input, got %d", len(ops))
	}
}

func TestComputeDiff_AllRemoved(t *testing.T) {
	ops := ComputeDiff([]string{"a", "b"}, nil)
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	for _, op := range ops {
		if op.Kind != OpRemove {
			t.Errorf("expected all Remove ops, got %+v", op)
		}
	}
}

func TestComputeDiff_AllAdded(t *testing.T) {
	ops := ComputeDiff(nil, []string{"a", "b"})
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	for _, op := range ops {
		if op.Kind != OpAdd {
			t.Errorf("expected all Add ops, got %+v", op)
		}
	}
}

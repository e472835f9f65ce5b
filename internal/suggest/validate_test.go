package suggest

import "testing"

func TestValidate_NoChange(t *testing.T) {
	res := Validate("hello world", "hello world", Default())
	if res.Valid {
		t.Error("expected no-change to be invalid")
	}
	if res.Reason != ReasonNoChange {
		t.Errorf("reason = %q, want %q", res.Reason, ReasonNoChange)
	}
}

func TestValidate_AcronymCollapse(t *testing.T) {
	res := Validate("sage maker rocks", "SageMaker rocks", Default())
	if !res.Valid {
		t.Errorf("expected accept, got reason %q", res.Reason)
	}
}

func TestValidate_ShortSegmentAccepted(t *testing.T) {
	res := Validate("face book", "Facebook", Default())
	if !res.Valid {
		t.Errorf("expected short segment to be accepted under default thresholds, got reason %q", res.Reason)
	}
}

func TestValidate_RejectsHeavyRewrite(t *testing.T) {
	original := "So default in Lambda, that would be a one-to-one ratio"
	corrected := "So you can have up to 64 concurrent invocations"

	res := Validate(original, corrected, Default())
	if res.Valid {
		t.Error("expected rejection")
	}
	if res.Reason != ReasonWordChangeRatio {
		t.Errorf("reason = %q, want %q", res.Reason, ReasonWordChangeRatio)
	}
}

func TestValidate_Disabled(t *testing.T) {
	cfg := Default()
	cfg.Enabled = false
	res := Validate("anything at all", "completely different text entirely", cfg)
	if !res.Valid {
		t.Error("expected validation disabled to always accept")
	}
}

func TestWordChangeRatio_LambdaLithExample(t *testing.T) {
	// 21-word sentence containing "lambda land" -> "LambdaLith" should
	// produce a ratio <= 0.15 per spec.md §8.
	original := "when you think about lambda land you realize it is actually a pretty elegant way to build small independent services quickly"
	corrected := "when you think about LambdaLith you realize it is actually a pretty elegant way to build small independent services quickly"

	res := Validate(original, corrected, Default())
	if res.WordChangeRatio > 0.15 {
		t.Errorf("wordChangeRatio = %f, want <= 0.15", res.WordChangeRatio)
	}
}

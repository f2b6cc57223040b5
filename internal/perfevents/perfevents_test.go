package perfevents

import "testing"

func TestTokensCloseWithNothingAttachedIsSafe(t *testing.T) {
	tokens := &Tokens{}
	tokens.Close()
}

func TestSampleFrequencyMatchesOriginal(t *testing.T) {
	if sampleFrequencyHz != 1 {
		t.Fatalf("sampleFrequencyHz = %d, want 1", sampleFrequencyHz)
	}
}

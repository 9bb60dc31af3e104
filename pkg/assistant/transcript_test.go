package assistant

import "testing"

func TestTranscriptAppendOrder(t *testing.T) {
	tr := NewTranscript()

	tr.Append(RoleUser, "hello")
	tr.Append(RoleAssistant, "hi there")
	tr.Append(RoleUser, "bye")

	turns := tr.All()
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[0].Text != "hello" || turns[1].Text != "hi there" || turns[2].Text != "bye" {
		t.Errorf("turns out of order: %+v", turns)
	}
	if turns[0].Role != RoleUser || turns[1].Role != RoleAssistant {
		t.Errorf("unexpected roles: %+v", turns)
	}
	if turns[0].ID == "" || turns[0].ID == turns[1].ID {
		t.Errorf("expected unique non-empty turn IDs")
	}
}

func TestTranscriptRecent(t *testing.T) {
	tr := NewTranscript()
	for _, text := range []string{"a", "b", "c", "d"} {
		tr.Append(RoleUser, text)
	}

	recent := tr.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(recent))
	}
	if recent[0].Text != "c" || recent[1].Text != "d" {
		t.Errorf("expected most recent turns in order, got %+v", recent)
	}

	if got := tr.Recent(0); len(got) != 4 {
		t.Errorf("Recent(0) should return all turns, got %d", len(got))
	}
	if got := tr.Recent(10); len(got) != 4 {
		t.Errorf("Recent beyond length should return all turns, got %d", len(got))
	}
}

func TestTranscriptClear(t *testing.T) {
	tr := NewTranscript()
	tr.Append(RoleUser, "hello")

	tr.Clear()
	if tr.Len() != 0 {
		t.Errorf("expected empty transcript after clear, got %d", tr.Len())
	}
}

func TestTranscriptCopySafety(t *testing.T) {
	tr := NewTranscript()
	tr.Append(RoleUser, "original")

	turns := tr.All()
	turns[0].Text = "mutated"

	if tr.All()[0].Text != "original" {
		t.Error("All must return a copy, not the backing slice")
	}
}

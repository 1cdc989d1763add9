package chat

import "testing"

func TestLastTurnsKeepsMostRecent(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Content: "1"},
		{Role: RoleAssistant, Content: "2"},
		{Role: RoleUser, Content: "3"},
		{Role: RoleAssistant, Content: "4"},
		{Role: RoleUser, Content: "5"},
	}

	got := LastTurns(turns, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(got))
	}
	if got[0].Content != "4" || got[1].Content != "5" {
		t.Fatalf("unexpected turns: %+v", got)
	}

	got[0].Content = "changed"
	if turns[3].Content != "4" {
		t.Fatal("LastTurns must not alias its input")
	}
}

func TestLastTurnsDropsInvalid(t *testing.T) {
	turns := []Turn{
		{Role: "system", Content: "ignore me"},
		{Role: RoleUser, Content: "   "},
		{Role: RoleUser, Content: "مرحبا"},
	}

	got := LastTurns(turns, 10)
	if len(got) != 1 || got[0].Content != "مرحبا" {
		t.Fatalf("unexpected turns: %+v", got)
	}
}

func TestLastTurnsZeroLimit(t *testing.T) {
	if got := LastTurns([]Turn{{Role: RoleUser, Content: "x"}}, 0); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

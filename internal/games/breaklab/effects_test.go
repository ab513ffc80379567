package breaklab

import "testing"

func TestExpirationsScheduleReplaces(t *testing.T) {
	var e Expirations
	e.Schedule(EffectExpand, 100)
	e.Schedule(EffectSlow, 50)
	e.Schedule(EffectExpand, 200)

	if e.Len() != 2 {
		t.Fatalf("Len = %d, want 2", e.Len())
	}
	if tick, ok := e.Pending(EffectExpand); !ok || tick != 200 {
		t.Errorf("expand deadline = %d (%v), want 200", tick, ok)
	}

	if due := e.Due(49); len(due) != 0 {
		t.Errorf("nothing should be due at 49, got %v", due)
	}
	due := e.Due(100)
	if len(due) != 1 || due[0] != EffectSlow {
		t.Errorf("Due(100) = %v, want [slow]", due)
	}
	if e.Active(EffectSlow) {
		t.Error("slow should be consumed")
	}
	due = e.Due(500)
	if len(due) != 1 || due[0] != EffectExpand {
		t.Errorf("Due(500) = %v, want [expand]", due)
	}
	if e.Len() != 0 {
		t.Errorf("list should be empty, got %v", e.List())
	}
}

func TestExpirationsClear(t *testing.T) {
	var e Expirations
	e.Schedule(EffectRespawn, 10)
	e.Clear()
	if e.Len() != 0 || len(e.Due(1000)) != 0 {
		t.Error("Clear should drop every expiration")
	}
}

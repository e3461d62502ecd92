package system

import "testing"

func TestScheduler_FiresAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(1.0, func() { fired = true })

	s.Update(0.5)
	if fired {
		t.Fatal("action fired before its delay elapsed")
	}
	s.Update(0.6)
	if !fired {
		t.Fatal("action did not fire after its delay elapsed")
	}
}

func TestScheduler_FiresOnce(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(0.1, func() { count++ })
	s.Update(1.0)
	s.Update(1.0)
	if count != 1 {
		t.Fatalf("action fired %d times, want 1", count)
	}
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.After(1.0, func() { fired = true })
	s.Cancel(h)
	s.Update(2.0)
	if fired {
		t.Fatal("cancelled action still fired")
	}
}

func TestScheduler_CancelAll(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(0.5, func() { count++ })
	s.After(1.0, func() { count++ })
	s.CancelAll()
	s.Update(2.0)
	if count != 0 {
		t.Fatalf("%d actions fired after CancelAll", count)
	}
}

func TestScheduler_ActionScheduledInsideCallbackWaits(t *testing.T) {
	s := NewScheduler()
	nested := false
	s.After(0.1, func() {
		s.After(0.5, func() { nested = true })
	})
	s.Update(1.0)
	if nested {
		t.Fatal("nested action fired on the tick that scheduled it")
	}
	s.Update(0.6)
	if !nested {
		t.Fatal("nested action never fired")
	}
}

package frame

import "testing"

func TestScheduleRunsAtNextFrame(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.Schedule(func() { ran++ })

	if ran != 0 {
		t.Fatal("callback ran before RunFrame")
	}
	s.RunFrame()
	if ran != 1 {
		t.Fatalf("ran = %d, want 1", ran)
	}
	s.RunFrame()
	if ran != 1 {
		t.Fatalf("callback reran, ran = %d", ran)
	}
}

func TestCancelPreventsRun(t *testing.T) {
	s := NewScheduler()
	ran := false
	h := s.Schedule(func() { ran = true })

	if !h.Pending() {
		t.Fatal("handle not pending after schedule")
	}
	h.Cancel()
	if h.Pending() {
		t.Fatal("handle still pending after cancel")
	}
	s.RunFrame()
	if ran {
		t.Fatal("canceled callback ran")
	}

	// Double cancel is a no-op
	h.Cancel()
}

func TestRunOrderMatchesScheduleOrder(t *testing.T) {
	s := NewScheduler()
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		s.Schedule(func() { got = append(got, i) })
	}
	s.RunFrame()
	for i, v := range got {
		if v != i {
			t.Fatalf("run order %v, want ascending", got)
		}
	}
}

func TestScheduleDuringRunLandsNextFrame(t *testing.T) {
	s := NewScheduler()
	second := false
	s.Schedule(func() {
		s.Schedule(func() { second = true })
	})
	s.RunFrame()
	if second {
		t.Fatal("nested callback ran in the same frame")
	}
	s.RunFrame()
	if !second {
		t.Fatal("nested callback never ran")
	}
}

func TestReleaseDropsPendingAndRefusesNew(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.Schedule(func() { ran = true })
	s.Release()

	if n := s.PendingCount(); n != 0 {
		t.Fatalf("PendingCount = %d after Release, want 0", n)
	}
	s.RunFrame()
	if ran {
		t.Fatal("released callback ran")
	}
	if h := s.Schedule(func() {}); h != nil {
		t.Fatal("Schedule returned a handle after Release")
	}
	if n := s.PendingCount(); n != 0 {
		t.Fatalf("PendingCount = %d after post-release schedule, want 0", n)
	}
}

func TestNilHandleSafe(t *testing.T) {
	var h *Handle
	h.Cancel()
	if h.Pending() {
		t.Fatal("nil handle pending")
	}
}

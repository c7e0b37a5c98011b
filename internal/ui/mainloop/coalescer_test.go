package mainloop

import "testing"

func TestCoalescerMergesBurstIntoSingleTurn(t *testing.T) {
	sched := NewManualScheduler()
	c := NewCoalescer(sched)

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post(TaskRender, func() { value = v })
	}

	if len(sched.posted) != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", len(sched.posted))
	}
	sched.Drain()

	if value != 5 {
		t.Fatalf("expected latest callback to run, got %d", value)
	}
}

func TestCoalescerKeepsDistinctKeysSeparate(t *testing.T) {
	sched := NewManualScheduler()
	c := NewCoalescer(sched)

	renders, chromes := 0, 0
	c.Post(TaskRender, func() { renders++ })
	c.Post(TaskChrome, func() { chromes++ })
	sched.Drain()

	if renders != 1 || chromes != 1 {
		t.Fatalf("expected one run per key, got renders=%d chromes=%d", renders, chromes)
	}
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	sched := NewManualScheduler()
	c := NewCoalescer(sched)

	ran := false
	c.Post(TaskRender, func() { ran = true })
	c.Destroy()

	if len(sched.posted) != 1 {
		t.Fatalf("expected one queued callback before destroy, got %d", len(sched.posted))
	}
	sched.Drain()

	if ran {
		t.Fatalf("expected queued work to be dropped after destroy")
	}

	c.Post(TaskRender, func() { ran = true })
	if len(sched.posted) != 0 {
		t.Fatalf("expected no new callback after destroy, got %d", len(sched.posted))
	}
}

func TestNewCoalescerPanicsOnNilScheduler(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when scheduler is nil")
		}
	}()

	_ = NewCoalescer(nil)
}

package page

import "testing"

func TestEmitterSubscribe(t *testing.T) {
	e := NewEmitter()

	var order []string
	unsubA := e.Subscribe(func(ev Event) { order = append(order, "a:"+ev.Kind.String()) })
	e.Subscribe(func(ev Event) { order = append(order, "b:"+ev.Kind.String()) })

	e.Emit(Event{Kind: EventConverted})
	unsubA()
	unsubA()
	e.Emit(Event{Kind: EventRestored})

	want := []string{"a:converted", "b:converted", "b:restored"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, order[i], want[i])
		}
	}
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1", e.Len())
	}
}

func TestEmitterHandlerCanCallBack(t *testing.T) {
	c := rendered(t)

	var hidden int
	c.Events().Subscribe(func(ev Event) {
		// Handlers run after the controller unlocked
		hidden = len(c.HiddenItems())
	})
	if _, err := c.ConvertRun(1); err != nil {
		t.Fatalf("ConvertRun() failed: %v", err)
	}
	if hidden != 2 {
		t.Errorf("handler saw %d hidden items, want 2", hidden)
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{EventRendered.String(), "rendered"},
		{EventErased.String(), "erased"},
		{EventKind(99).String(), "unknown"},
		{KindText.String(), "text"},
		{KindErase.String(), "erase"},
		{OverlayKind(9).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

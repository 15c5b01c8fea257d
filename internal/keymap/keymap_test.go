package keymap

import "testing"

func TestByContext(t *testing.T) {
	cases := []struct {
		context string
		count   int
	}{
		{"global", 3},
		{"sheet", 6},
		{"detent", 4},
		{"unknown", 0},
		{"", 0},
	}
	for _, c := range cases {
		got := ByContext(c.context)
		if len(got) != c.count {
			t.Errorf("ByContext(%q) returned %d bindings, want %d", c.context, len(got), c.count)
		}
		for _, b := range got {
			if b.Context != c.context {
				t.Errorf("ByContext(%q) returned binding %q with context %q", c.context, b.Action, b.Context)
			}
		}
	}
}

func TestEveryActionIsBound(t *testing.T) {
	bound := make(map[Action]string)
	for _, b := range Bindings {
		bound[b.Action] = b.Context
	}

	wantContext := map[Action]string{
		ActionQuit:        "global",
		ActionHelp:        "global",
		ActionToggleInput: "global",
		ActionDragUp:      "sheet",
		ActionDragDown:    "sheet",
		ActionRelease:     "sheet",
		ActionFlingUp:     "sheet",
		ActionFlingDown:   "sheet",
		ActionSettle:      "sheet",
		ActionNextDetent:  "detent",
		ActionPrevDetent:  "detent",
		ActionExpand:      "detent",
		ActionCollapse:    "detent",
	}

	for action, context := range wantContext {
		got, ok := bound[action]
		if !ok {
			t.Errorf("action %q has no binding", action)
			continue
		}
		if got != context {
			t.Errorf("action %q bound in context %q, want %q", action, got, context)
		}
	}
	if len(bound) != len(wantContext) {
		t.Errorf("Bindings covers %d actions, want %d", len(bound), len(wantContext))
	}
}

func TestBindingsAreComplete(t *testing.T) {
	validContexts := map[string]bool{"global": true, "sheet": true, "detent": true}

	for i, b := range Bindings {
		switch {
		case b.Action == "":
			t.Errorf("binding[%d] has empty Action", i)
		case len(b.Keys) == 0:
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		case b.Description == "":
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		case !validContexts[b.Context]:
			t.Errorf("binding[%d] (%s) has invalid context %q", i, b.Action, b.Context)
		}
	}
}

// TestNoConflictingKeys verifies no key maps to two different actions. The
// app dispatches through a single resolver, so a conflict would silently
// shadow one of the bindings.
func TestNoConflictingKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, key := range b.Keys {
			if prev, ok := seen[key]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			seen[key] = b.Action
		}
	}
}

package tracker

import "testing"

func TestWrapValue_NestedContainersGetFixedPaths(t *testing.T) {
	buf := &DiffBuffer{}
	w, err := wrapValue(map[string]any{
		"a": map[string]any{"x": 1.0},
		"b": []any{"p", "q"},
	}, "", buf, Standard)
	if err != nil {
		t.Fatalf("wrapValue: %v", err)
	}
	m := w.(*Map)
	a := m.Get("a").(*Map)
	if a.Path() != "/a" {
		t.Fatalf("got %q", a.Path())
	}
	b := m.Get("b").(*Slice)
	if b.Path() != "/b" {
		t.Fatalf("got %q", b.Path())
	}
}

func TestWrapValue_ScalarsPassThrough(t *testing.T) {
	buf := &DiffBuffer{}
	w, err := wrapValue("plain string", "/x", buf, Standard)
	if err != nil {
		t.Fatalf("wrapValue: %v", err)
	}
	if w != "plain string" {
		t.Fatalf("got %v", w)
	}
}

func TestWrapValue_AlreadyWrappedContainerKeepsItsOwnPath(t *testing.T) {
	buf := &DiffBuffer{}
	inner, err := wrapValue(map[string]any{"x": 1.0}, "/orig", buf, Standard)
	if err != nil {
		t.Fatalf("wrapValue: %v", err)
	}
	// Re-wrapping at a different path must not touch an already-wrapped
	// container: wrapValue's switch only matches raw map/slice literals.
	again, err := wrapValue(inner, "/elsewhere", buf, Standard)
	if err != nil {
		t.Fatalf("wrapValue: %v", err)
	}
	if again.(*Map).Path() != "/orig" {
		t.Fatalf("got %q", again.(*Map).Path())
	}
}

func TestTrackChange_RejectsScalarRoot(t *testing.T) {
	if _, _, err := TrackChange("not a container", Standard); err == nil {
		t.Fatalf("expected an error wrapping a scalar root")
	}
}

func TestPlain_RoundTripsContainersToMapsAndSlices(t *testing.T) {
	buf := &DiffBuffer{}
	w, err := wrapValue(map[string]any{
		"a": []any{"x", "y"},
	}, "", buf, Standard)
	if err != nil {
		t.Fatalf("wrapValue: %v", err)
	}
	out := plain(w).(map[string]any)
	items, ok := out["a"].([]any)
	if !ok || len(items) != 2 || items[0] != "x" || items[1] != "y" {
		t.Fatalf("got %+v", out)
	}
}

func TestScalarEqual_ComparesScalarsOnly(t *testing.T) {
	if !scalarEqual(3.0, 3.0) {
		t.Fatalf("expected equal scalars to compare equal")
	}
	if scalarEqual("a", "b") {
		t.Fatalf("expected different scalars to compare unequal")
	}
	if scalarEqual(&Map{}, &Map{}) {
		t.Fatalf("expected two containers to never compare equal")
	}
}

func TestScalarEqual_UncomparableTypeDoesNotPanic(t *testing.T) {
	if scalarEqual([]any{1.0}, []any{1.0}) {
		t.Fatalf("expected uncomparable slices to not be treated as equal")
	}
}

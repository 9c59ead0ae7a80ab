package insight

import (
	"encoding/json"
	"testing"
)

func TestGoalJSON(t *testing.T) {
	t.Run("StringRoundTrip", func(t *testing.T) {
		in := []byte(`"Pray more often"`)
		var g Goal
		if err := json.Unmarshal(in, &g); err != nil {
			t.Fatal(err)
		}
		if g.Text != "Pray more often" || g.Parts != nil {
			t.Fatalf("unexpected goal: %+v", g)
		}

		out, err := json.Marshal(g)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != string(in) {
			t.Errorf("round trip changed shape: %s", out)
		}
	})

	t.Run("PartsRoundTrip", func(t *testing.T) {
		in := []byte(`{"first":"Pause","second":"Breathe","third":"Pray"}`)
		var g Goal
		if err := json.Unmarshal(in, &g); err != nil {
			t.Fatal(err)
		}
		if g.Parts == nil || g.Parts.Second != "Breathe" {
			t.Fatalf("unexpected goal: %+v", g)
		}

		out, err := json.Marshal(g)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != string(in) {
			t.Errorf("round trip changed shape: %s", out)
		}
	})

	t.Run("RejectsOtherShapes", func(t *testing.T) {
		var g Goal
		if err := json.Unmarshal([]byte(`42`), &g); err == nil {
			t.Error("expected error for numeric goal")
		}
	})
}

func TestGoalScan(t *testing.T) {
	t.Run("BytesFromDB", func(t *testing.T) {
		var g Goal
		if err := g.Scan([]byte(`"Read scripture daily"`)); err != nil {
			t.Fatal(err)
		}
		if g.Text != "Read scripture daily" {
			t.Errorf("got %q", g.Text)
		}
	})

	t.Run("Nil", func(t *testing.T) {
		g := Goal{Text: "old"}
		if err := g.Scan(nil); err != nil {
			t.Fatal(err)
		}
		if !g.IsZero() {
			t.Errorf("expected zero goal, got %+v", g)
		}
	})

	t.Run("Value", func(t *testing.T) {
		g := Goal{Parts: &GoalParts{First: "a", Second: "b", Third: "c"}}
		v, err := g.Value()
		if err != nil {
			t.Fatal(err)
		}
		if v.(string) != `{"first":"a","second":"b","third":"c"}` {
			t.Errorf("got %v", v)
		}
	})
}

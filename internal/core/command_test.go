package core

import "testing"

func TestConstructorsApplyDefaults(t *testing.T) {
	cases := []struct {
		name string
		cmd  Command
		op   Op
		kind string
	}{
		{"fetch-data", NewFetchData(""), OpFetchData, "activities"},
		{"coaching", NewCoaching(""), OpCoaching, "activity"},
		{"example", NewExample(""), OpExample, "data"},
	}
	for _, tc := range cases {
		if tc.cmd.Op != tc.op || tc.cmd.Kind != tc.kind {
			t.Fatalf("%s: unexpected command: %#v", tc.name, tc.cmd)
		}
		if err := tc.cmd.Validate(); err != nil {
			t.Fatalf("%s: validate: %v", tc.name, err)
		}
	}
}

func TestConstructorsKeepExplicitKind(t *testing.T) {
	if cmd := NewFetchData("health"); cmd.Kind != "health" {
		t.Fatalf("unexpected kind: %q", cmd.Kind)
	}
	if cmd := NewCoaching("plan"); cmd.Kind != "plan" {
		t.Fatalf("unexpected kind: %q", cmd.Kind)
	}
	if cmd := NewExample("ai"); cmd.Kind != "ai" {
		t.Fatalf("unexpected kind: %q", cmd.Kind)
	}
}

func TestValidateRejectsEmptyKind(t *testing.T) {
	cmd := Command{Op: OpFetchData}
	if err := cmd.Validate(); err == nil {
		t.Fatalf("expected error for empty kind")
	}
}

func TestValidateRejectsUnknownOp(t *testing.T) {
	cmd := Command{Op: "sync", Kind: "activities"}
	if err := cmd.Validate(); err == nil {
		t.Fatalf("expected error for unknown op")
	}
}

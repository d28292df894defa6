package dismiss

import "testing"

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		value string
		want  Policy
		ok    bool
	}{
		{"any", PolicyAny, true},
		{"closerequest", PolicyCloseRequest, true},
		{"none", PolicyNone, true},
		{"", PolicyAny, false},
		{"Any", PolicyAny, false},           // matching is case-sensitive
		{"CLOSEREQUEST", PolicyAny, false},
		{"backdrop", PolicyAny, false},
	}
	for _, tc := range cases {
		got, ok := ParsePolicy(tc.value)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePolicy(%q) = (%v, %v), want (%v, %v)", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestResolveRecognizedValues(t *testing.T) {
	for value, want := range map[string]Policy{
		"any":          PolicyAny,
		"closerequest": PolicyCloseRequest,
		"none":         PolicyNone,
	} {
		d := openDialog("d", value)
		if got := Resolve(d); got != want {
			t.Errorf("Resolve(closedby=%q) = %v, want %v", value, got, want)
		}
	}
}

func TestResolveFallsBackToAny(t *testing.T) {
	// Invalid and absent values must never leave the dialog un-dismissable.
	for _, value := range []string{"", "nonsense", "None", " any"} {
		d := openDialog("d", value)
		if got := Resolve(d); got != PolicyAny {
			t.Errorf("Resolve(closedby=%q) = %v, want PolicyAny", value, got)
		}
	}

	unset := &stubDialog{open: true}
	if got := Resolve(unset); got != PolicyAny {
		t.Errorf("Resolve(no attribute) = %v, want PolicyAny", got)
	}
	if Configured(unset) {
		t.Errorf("Configured(no attribute) = true, want false")
	}
}

func TestResolveReadsCurrentValue(t *testing.T) {
	// Policy is a projection of current state, not a snapshot: edits while
	// the dialog is open take effect at the next resolution.
	d := openDialog("d", "none")
	if Resolve(d) != PolicyNone {
		t.Fatalf("expected PolicyNone before edit")
	}
	d.SetClosedByAttr("closerequest")
	if Resolve(d) != PolicyCloseRequest {
		t.Fatalf("expected PolicyCloseRequest after edit, no re-attach needed")
	}
}

func TestPolicyString(t *testing.T) {
	if PolicyAny.String() != "any" || PolicyCloseRequest.String() != "closerequest" || PolicyNone.String() != "none" {
		t.Fatalf("policy string round-trip broken: %q %q %q", PolicyAny, PolicyCloseRequest, PolicyNone)
	}
}

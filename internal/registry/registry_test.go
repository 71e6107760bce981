package registry

import (
	"context"
	"testing"
)

type stubFrontend struct{ id string }

func (s stubFrontend) ID() string                            { return s.id }
func (s stubFrontend) Title() string                         { return "Stub " + s.id }
func (s stubFrontend) Run(context.Context, RunOptions) error { return nil }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub-b", func() Frontend { return stubFrontend{"zz-stub-b"} })
	Register("zz-stub-a", func() Frontend { return stubFrontend{"zz-stub-a"} })

	if !Exists("zz-stub-a") {
		t.Error("Exists() = false after Register")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz-stub-a" && info.Title != "Stub zz-stub-a" {
			t.Errorf("Title = %q", info.Title)
		}
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "zz-stub-a":
			ia = i
		case "zz-stub-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected both stubs sorted by ID", ids)
	}

	f, err := Create("zz-stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if f.ID() != "zz-stub-b" {
		t.Errorf("Create() ID = %q", f.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-frontend"); err == nil {
		t.Error("expected error for unknown frontend")
	}
	if Exists("no-such-frontend") {
		t.Error("Exists() = true for unknown frontend")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-stub-dup", func() Frontend { return stubFrontend{"zz-stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-stub-dup", func() Frontend { return stubFrontend{"zz-stub-dup"} })
}

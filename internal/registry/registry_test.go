package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/pixel-snake/internal/engine"
)

type stubFrontend struct{ id string }

func (s stubFrontend) ID() string { return s.id }
func (s stubFrontend) Title() string { return "Stub " + s.id }
func (s stubFrontend) Run(context.Context, *engine.App) error { return nil }

// unregister removes a frontend registered by a test.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, id)
	delete(titles, id)
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return stubFrontend{id: "stub-b"} })
	Register("stub-a", func() Frontend { return stubFrontend{id: "stub-a"} })
	t.Cleanup(func() {
		unregister("stub-a")
		unregister("stub-b")
	})

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) should be true")
	}

	f, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.ID() != "stub-b" {
		t.Errorf("Create() returned %q", f.ID())
	}

	list := List()
	if len(list) != 2 || list[0].ID != "stub-a" || list[1].Title != "Stub stub-b" {
		t.Errorf("List() = %+v, expected sorted stubs", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("Create(nope) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return stubFrontend{id: "stub-dup"} })
	t.Cleanup(func() { unregister("stub-dup") })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("stub-dup", func() Frontend { return stubFrontend{id: "stub-dup"} })
}

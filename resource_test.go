package centurion

import (
	"errors"
	"testing"
)

type fake struct {
	id int
}

func counting(count *int) Deleter[*fake] {
	return func(*fake) { *count++ }
}

func TestOwned_ClosesExactlyOnce(t *testing.T) {
	var deleted int
	r := Owned(&fake{id: 1}, counting(&deleted))

	if !r.Valid() || !r.Owning() {
		t.Fatal("expected a valid owning resource")
	}

	r.Close()
	r.Close()
	if deleted != 1 {
		t.Fatalf("expected 1 deletion, got %d", deleted)
	}
	if r.Valid() {
		t.Fatal("expected a closed resource to be null")
	}
}

func TestOwned_NilNeverDeletes(t *testing.T) {
	var deleted int
	r := Owned[*fake](nil, counting(&deleted))
	r.Close()
	if deleted != 0 {
		t.Fatalf("expected no deletion for a nil pointer, got %d", deleted)
	}
}

func TestBorrowed_NeverDeletes(t *testing.T) {
	var deleted int
	owner := Owned(&fake{id: 2}, counting(&deleted))
	handle := owner.Borrow()

	if handle.Get() != owner.Get() {
		t.Fatal("expected the handle to alias the owner's pointer")
	}
	if handle.Owning() {
		t.Fatal("expected the handle to be non-owning")
	}

	handle.Close()
	if deleted != 0 {
		t.Fatalf("closing a handle must not delete, got %d deletions", deleted)
	}

	owner.Close()
	if deleted != 1 {
		t.Fatalf("expected the owner to delete once, got %d", deleted)
	}
}

func TestBorrowed_NilIsInvalid(t *testing.T) {
	h := Borrowed[*fake](nil)
	if h.Valid() {
		t.Fatal("expected a nil handle to be invalid")
	}
}

func TestMove_TransfersOwnership(t *testing.T) {
	var deleted int
	a := Owned(&fake{id: 3}, counting(&deleted))
	ptr := a.Get()

	b := a.Move()
	if a.Valid() {
		t.Fatal("expected the moved-from resource to be null")
	}
	if b.Get() != ptr {
		t.Fatal("expected the moved-to resource to hold the original pointer")
	}

	a.Close()
	if deleted != 0 {
		t.Fatal("closing a moved-from resource must not delete")
	}
	b.Close()
	if deleted != 1 {
		t.Fatalf("expected 1 deletion, got %d", deleted)
	}
}

func TestRelease_SkipsDeleter(t *testing.T) {
	var deleted int
	r := Owned(&fake{id: 4}, counting(&deleted))
	if r.Release() == nil {
		t.Fatal("expected Release to return the pointer")
	}
	r.Close()
	if deleted != 0 {
		t.Fatalf("expected no deletion after Release, got %d", deleted)
	}
}

func TestReset_DestroysPrevious(t *testing.T) {
	var deleted int
	r := Owned(&fake{id: 5}, counting(&deleted))
	next := &fake{id: 6}
	r.Reset(next)
	if deleted != 1 {
		t.Fatalf("expected the previous pointer to be deleted, got %d", deleted)
	}
	if r.Get() != next {
		t.Fatal("expected Reset to adopt the new pointer")
	}
	r.Close()
	if deleted != 2 {
		t.Fatalf("expected the adopted pointer to be deleted, got %d", deleted)
	}
}

func TestAcquire(t *testing.T) {
	var deleted int

	_, err := Acquire[*fake](SDL, nil, errors.New("boom"), counting(&deleted))
	if !errors.Is(err, ErrSDL) {
		t.Fatalf("expected an SDL error, got %v", err)
	}
	if err.Error() != "SDL: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	SetError("native failure")
	_, err = Acquire[*fake](MIX, nil, nil, counting(&deleted))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected an *Error, got %T", err)
	}
	if e.Library != MIX || e.Message != "native failure" {
		t.Fatalf("expected the captured native error, got %+v", e)
	}

	r, err := Acquire(TTF, &fake{id: 7}, nil, counting(&deleted))
	if err != nil || !r.Valid() {
		t.Fatalf("expected a valid resource, got %v", err)
	}
	r.Close()
	if deleted != 1 {
		t.Fatalf("expected 1 deletion, got %d", deleted)
	}
}

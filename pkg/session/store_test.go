package session

import (
	"context"
	"testing"

	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/store"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

func TestPersistRestore(t *testing.T) {
	ctx := context.Background()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	src := newOutranking(t)
	if err := src.Persist(ctx, st, "cars", xmcda.Metadata{}); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	list, _ := st.List(ctx)
	if len(list) != 1 || list[0].Type != "outranking" || list[0].Actions != 3 {
		t.Fatalf("List = %+v", list)
	}

	dst := newGeneral(t, "x")
	if err := dst.Restore(ctx, st, "cars"); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if dst.Type() != src.Type() || dst.Digraph().Len() != 3 {
		t.Errorf("restored type %s with %d actions", dst.Type(), dst.Digraph().Len())
	}
	if !dst.Pairwise().Covers("a", "b") {
		t.Error("pairwise table lost in snapshot")
	}

	if err := dst.Restore(ctx, st, "missing"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Restore missing = %v, want NOT_FOUND", err)
	}
	if dst.Digraph().Len() != 3 {
		t.Error("failed restore changed the session")
	}
	if err := src.Persist(ctx, st, "bad/name", xmcda.Metadata{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Persist bad name = %v, want INVALID_INPUT", err)
	}
}

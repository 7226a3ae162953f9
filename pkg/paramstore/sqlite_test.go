package paramstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/mutparam/pkg/constants"
	"github.com/andrew-torda/mutparam/pkg/paramstore"
)

func newStore(t *testing.T) *paramstore.SQLiteStore {
	t.Helper()
	s := paramstore.NewSQLiteStore(filepath.Join(t.TempDir(), "params.db"))
	if err := s.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	p := constants.DefaultParams()
	p.L, p.Q, p.Seed = 60, 2, 42
	c, err := constants.New(p)
	if err != nil {
		t.Fatal(err)
	}
	id, err := s.Save(ctx, c)
	if err != nil {
		t.Fatal(err)
	}
	got, found, err := s.Get(ctx, id)
	if err != nil || !found {
		t.Fatal("Get", found, err)
	}
	if diff := cmp.Diff(c.Params(), got.Params()); diff != "" {
		t.Error("stored parameters differ (-saved +got):\n", diff)
	}
	if !cmp.Equal(c.NMutRange(), got.NMutRange()) {
		t.Error("id ranges differ")
	}
	if _, found, err := s.Get(ctx, "no-such-id"); found || err != nil {
		t.Error("missing id gave", found, err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	var ids []string
	for _, l := range []int{50, 60, 40} {
		p := constants.DefaultParams()
		p.L = l
		c, err := constants.New(p)
		if err != nil {
			t.Fatal(err)
		}
		id, err := s.Save(ctx, c)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	recs, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatal("got", len(recs), "records")
	}
	seen := make(map[string]int)
	for _, r := range recs {
		seen[r.ID] = r.L
	}
	for i, l := range []int{50, 60, 40} {
		if seen[ids[i]] != l {
			t.Errorf("record %s has L %d want %d", ids[i], seen[ids[i]], l)
		}
	}
}

func TestNotOpen(t *testing.T) {
	s := paramstore.NewSQLiteStore(filepath.Join(t.TempDir(), "x.db"))
	if _, err := s.List(context.Background()); !errors.Is(err, paramstore.ErrNotOpen) {
		t.Error("wanted ErrNotOpen, got", err)
	}
	if err := paramstore.NewSQLiteStore("").Init(context.Background()); err == nil {
		t.Error("empty path should fail")
	}
}

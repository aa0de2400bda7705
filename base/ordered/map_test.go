package ordered_test

import (
	"testing"

	"github.com/gx-org/affine/base/ordered"
)

type entry struct {
	k string
	v int
}

func TestMapStoreLoadIter(t *testing.T) {
	tests := []struct {
		entries []entry
		want    []entry
	}{
		{
			entries: []entry{
				{k: "a", v: 1},
				{k: "b", v: 2},
				{k: "c", v: 3},
			},
			want: []entry{
				{k: "a", v: 1},
				{k: "b", v: 2},
				{k: "c", v: 3},
			},
		},
		{
			// Re-storing a key keeps its original position.
			entries: []entry{
				{k: "a", v: 1},
				{k: "b", v: 2},
				{k: "a", v: 3},
			},
			want: []entry{
				{k: "a", v: 3},
				{k: "b", v: 2},
			},
		},
	}
	for ti, test := range tests {
		m := ordered.NewMap[string, int]()
		for _, entry := range test.entries {
			m.Store(entry.k, entry.v)
		}
		if m.Size() != len(test.want) {
			t.Errorf("test %d: map has %d entries but want %d", ti, m.Size(), len(test.want))
			continue
		}
		i := 0
		for gotK, gotV := range m.Iter() {
			wantK, wantV := test.want[i].k, test.want[i].v
			if gotK != wantK || gotV != wantV {
				t.Errorf("test %d entry %d: got %s->%d but want %s->%d", ti, i, gotK, gotV, wantK, wantV)
			}
			i++
		}
		i = 0
		for gotV := range m.Values() {
			if wantV := test.want[i].v; gotV != wantV {
				t.Errorf("test %d value %d: got %d but want %d", ti, i, gotV, wantV)
			}
			i++
		}
		for _, want := range test.want {
			got, ok := m.Load(want.k)
			if !ok || got != want.v {
				t.Errorf("test %d: Load(%q) = %d,%v but want %d,true", ti, want.k, got, ok, want.v)
			}
		}
		if _, ok := m.Load("missing"); ok {
			t.Errorf("test %d: Load(missing) returned ok", ti)
		}
	}
}

package override

import (
	"testing"

	"github.com/arraykit/arraykit/internal/object"
)

func selectionOrder(t *testing.T, values ...object.Object) []int {
	t.Helper()
	types := testRegistry()
	set, err := scanCandidates(values, len(values), types)
	if err != nil {
		t.Fatalf("scanCandidates error: %v", err)
	}
	var order []int
	for {
		entry, ok := set.selectNext(types)
		if !ok {
			break
		}
		order = append(order, entry.Pos)
	}
	return order
}

func TestSelectOrder(t *testing.T) {
	tests := []struct {
		name   string
		values []object.Object
		want   []int
	}{
		{
			name:   "single candidate",
			values: []object.Object{&scripted{id: typeA}},
			want:   []int{0},
		},
		{
			name:   "equal types keep call order",
			values: []object.Object{&scripted{id: typeA}, &scripted{id: typeA}, &scripted{id: typeA}},
			want:   []int{0, 1, 2},
		},
		{
			name:   "subtype to the right goes first",
			values: []object.Object{&scripted{id: typeA}, &scripted{id: typeB}},
			want:   []int{1, 0},
		},
		{
			name:   "subtype to the left goes first",
			values: []object.Object{&scripted{id: typeB}, &scripted{id: typeA}},
			want:   []int{0, 1},
		},
		{
			name:   "chain of three",
			values: []object.Object{&scripted{id: typeA}, &scripted{id: typeB}, &scripted{id: typeC}},
			want:   []int{2, 1, 0},
		},
		{
			name:   "unrelated chains interleave by pass order",
			values: []object.Object{&scripted{id: typeA}, &scripted{id: typeB}, &scripted{id: typeX}, &scripted{id: typeY}},
			want:   []int{1, 0, 3, 2},
		},
		{
			name:   "unrelated siblings keep call order",
			values: []object.Object{&scripted{id: typeX}, &scripted{id: typeA}},
			want:   []int{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectionOrder(t, tt.values...)
			if len(got) != len(tt.want) {
				t.Fatalf("selection order = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("selection order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSelectMarksTriedPermanently(t *testing.T) {
	types := testRegistry()
	set, err := scanCandidates([]object.Object{&scripted{id: typeA}, &scripted{id: typeB}}, 2, types)
	if err != nil {
		t.Fatalf("scanCandidates error: %v", err)
	}

	first, ok := set.selectNext(types)
	if !ok || first.Pos != 1 {
		t.Fatalf("first selection = %v, want candidate at pos 1", first)
	}
	second, ok := set.selectNext(types)
	if !ok || second.Pos != 0 {
		t.Fatalf("second selection = %v, want candidate at pos 0", second)
	}
	if _, ok := set.selectNext(types); ok {
		t.Errorf("third selection succeeded, want exhaustion")
	}
	if _, ok := set.selectNext(types); ok {
		t.Errorf("selection after exhaustion succeeded, want exhaustion to be stable")
	}
}

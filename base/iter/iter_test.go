package iter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/affine/base/iter"
)

func TestAll(t *testing.T) {
	tests := []struct {
		slices [][]int
		want   []int
	}{
		{
			slices: [][]int{{1, 2}, {3}, nil, {4, 5}},
			want:   []int{1, 2, 3, 4, 5},
		},
		{
			slices: nil,
			want:   nil,
		},
	}
	for ti, test := range tests {
		var got []int
		for el := range iter.All(test.slices...) {
			got = append(got, el)
		}
		if !cmp.Equal(got, test.want) {
			t.Errorf("test %d: got %v but want %v", ti, got, test.want)
		}
	}
}

func TestAllStops(t *testing.T) {
	var got []int
	for el := range iter.All([]int{1, 2, 3}, []int{4}) {
		got = append(got, el)
		if el == 2 {
			break
		}
	}
	if !cmp.Equal(got, []int{1, 2}) {
		t.Errorf("got %v but want [1 2]", got)
	}
}

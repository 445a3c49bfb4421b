package alps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueNodes(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"runs collapse", []int{5, 5, 5, 7, 7, 5}, []int{5, 7, 5}},
		{"already unique", []int{1, 2, 3}, []int{1, 2, 3}},
		{"single", []int{9}, []int{9}},
		{"all same", []int{4, 4, 4, 4}, []int{4}},
		{"empty", []int{}, []int{}},
		{"nil", nil, []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := UniqueNodes(tc.in)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUniqueNodesLeavesInputAlone(t *testing.T) {
	in := []int{1, 1, 2}
	UniqueNodes(in)
	assert.Equal(t, []int{1, 1, 2}, in)
}

func TestAllPesNodes(t *testing.T) {
	in := []int{5, 5, 7}
	got := AllPesNodes(in)
	assert.Equal(t, in, got)

	got[0] = 99
	assert.Equal(t, 5, in[0], "result must be a copy")

	assert.Empty(t, AllPesNodes(nil))
}

func TestFormatNodeID(t *testing.T) {
	cases := map[int]string{
		0:      "nid00000",
		42:     "nid00042",
		12345:  "nid12345",
		99999:  "nid99999",
		100000: "nid100000",
	}
	for nid, want := range cases {
		assert.Equal(t, want, FormatNodeID(nid))
	}
}

func TestFormatNodeIDRoundTrip(t *testing.T) {
	for nid := 0; nid <= 99999; nid++ {
		name := FormatNodeID(nid)
		if len(name) != 8 {
			t.Fatalf("FormatNodeID(%d) = %q; want 8 characters", nid, name)
		}
		got, err := ParseNodeID(name)
		if err != nil || got != nid {
			t.Fatalf("ParseNodeID(%q) = %d, %v; want %d", name, got, err, nid)
		}
	}
}

func TestParseNodeIDRejects(t *testing.T) {
	for _, name := range []string{"", "nid", "node00001", "nidabc", "nid-0001", "00001"} {
		_, err := ParseNodeID(name)
		assert.Error(t, err, name)
	}
}

func TestFormatNodeIDs(t *testing.T) {
	assert.Equal(t, []string{"nid00001", "nid00020"}, FormatNodeIDs([]int{1, 20}))
	assert.Equal(t, []string{}, FormatNodeIDs(nil))
}

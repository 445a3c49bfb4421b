package alps

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeNamePrefix is the prefix of Cray compute node hostnames
const NodeNamePrefix = "nid"

// UniqueNodes collapses runs of consecutive equal node ids into one entry,
// keeping first-seen order. Non-adjacent repeats are kept:
// [5 5 5 7 7 5] gives [5 7 5].
func UniqueNodes(peNids []int) []int {
	nodes := make([]int, 0, len(peNids))
	for i, nid := range peNids {
		if i > 0 && nid == peNids[i-1] {
			continue
		}
		nodes = append(nodes, nid)
	}
	return nodes
}

// AllPesNodes returns the per-PE node ids unchanged (as a copy)
func AllPesNodes(peNids []int) []int {
	nodes := make([]int, len(peNids))
	copy(nodes, peNids)
	return nodes
}

// FormatNodeID renders a node id as a Cray hostname, e.g. 42 -> "nid00042".
// Ids above 99999 are printed in full rather than truncated.
func FormatNodeID(nid int) string {
	return fmt.Sprintf("%s%05d", NodeNamePrefix, nid)
}

// FormatNodeIDs applies FormatNodeID to every id
func FormatNodeIDs(nids []int) []string {
	names := make([]string, len(nids))
	for i, nid := range nids {
		names[i] = FormatNodeID(nid)
	}
	return names
}

// ParseNodeID is the inverse of FormatNodeID
func ParseNodeID(hostname string) (int, error) {
	digits, ok := strings.CutPrefix(hostname, NodeNamePrefix)
	if !ok || digits == "" {
		return 0, fmt.Errorf("not a node hostname: %q", hostname)
	}
	nid, err := strconv.Atoi(digits)
	if err != nil || nid < 0 {
		return 0, fmt.Errorf("not a node hostname: %q", hostname)
	}
	return nid, nil
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
)

// GraphHash identifies a graph by its vertex count and edge set. Edge
// direction, edge order, duplicates and self-loops are normalized away, so
// every descriptor of one graph maps to the same cached result.
func GraphHash(n int, edges [][2]int) string {
	norm := make([][2]int, 0, len(edges))
	for _, e := range edges {
		u, v := min(e[0], e[1]), max(e[0], e[1])
		if u != v {
			norm = append(norm, [2]int{u, v})
		}
	}
	slices.SortFunc(norm, func(a, b [2]int) int {
		if c := a[0] - b[0]; c != 0 {
			return c
		}
		return a[1] - b[1]
	})
	return hashKey("graph", n, slices.Compact(norm))
}

// hashKey returns "<namespace>:<sha256 of parts as JSON>".
func hashKey(namespace string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return namespace + ":" + Hash(data)
}

// Hash is the hex SHA-256 of data. FileCache names its entry files by the
// hash of the key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

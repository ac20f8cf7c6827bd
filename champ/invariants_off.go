//go:build !invariants

package champ

// invariants enables full trie validation after every mutation. Build with
// `-tags invariants` to turn it on.
const invariants = false

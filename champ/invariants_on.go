//go:build invariants

package champ

const invariants = true

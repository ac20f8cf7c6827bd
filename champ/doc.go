// Package champ defines persistent hash containers (Dict and Set) backed by a
// Compressed Hash-Array Mapped Prefix-tree (CHAMP).
//
// A trie consists of a number of connected nodes. Every mutation returns a new
// container sharing all untouched subtrees with the old one; the old container
// stays valid and never changes.
//
// Hash layout:
// -----------
//
// A key is hashed into 64 bits which are consumed 5 bits per level, least
// significant first:
//
//	[ 4:63-60 ] [ 5:59-55 ] ... [ 5:14-10 ] [ 5:09-05 ] [ 5:04-00 ]
//	 level 12    level 11        level 2     level 1     level 0
//
// Level 12 only has 4 bits left. Keys sharing all 64 bits end up in a
// collision node at level 13.
//
// Node variants:
// -------------
//
//   - Bitmap node:
//
//     dataMap  [ 32 bits ] - partitions holding an inline key/value entry
//     nodeMap  [ 32 bits ] - partitions holding a child node
//     entries  [ popcount(dataMap) ]entry  - ascending partition order
//     children [ popcount(nodeMap) ]*node  - ascending partition order
//
//     dataMap & nodeMap == 0, and the slot of partition p in either array is
//     popcount(map & (1<<p - 1)).
//
//   - Collision node:
//
//     entries [ >=2 ]entry - all with the same 64-bit hash, compared by key
//
//   - Empty: an empty container has no root node at all.
//
// Example trie (identity hash, keys 1, 2, 33 and 65):
// --------------------------------------------------
//
//	[data:{2} node:{1}] --+-- (2)
//	                      |
//	                      `-- [data:{0,1,2}] --+-- (1)
//	                                           +-- (33)
//	                                           `-- (65)
//
// Keys 1, 33 and 65 share partition 1 at level 0 and split at level 1.
//
// Canonical form:
// --------------
//
// Removing a key pulls a lone remaining entry up into its parent, so a
// non-root bitmap node always holds at least two entries in its subtree.
// Tries holding equal contents are therefore structurally identical, which
// lets Equal compare nodes instead of walking every key.
package champ

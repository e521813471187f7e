// Package dlx implements Knuth's Dancing Links technique for the exact
// cover problem, extended with conditional-unique constraint groups (a
// bounded number of columns within a sub-universe may be left uncovered)
// and a chaining mode that starts actively covering a group's remaining
// columns once its hole budget is exhausted.
//
// The matrix is a sparse 0/1 matrix addressed entirely by index-addressed
// arenas (up/down/left/right, node→row, node→column) rather than pointers,
// with -1 used as the null sentinel. Search is an explicit, non-recursive
// frame stack so that solutions can be produced one at a time through a
// lazy iterator instead of requiring the full search tree to be walked
// before the first result is available.
package dlx

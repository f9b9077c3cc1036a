// Package render provides the pure rendering core for lantern.
//
// It contains two independent pieces composed by the application:
// Resolve, which turns a fetch Snapshot into exactly one of three
// view outcomes (loading, failed, succeeded), and Compose, which
// nests a chain of render decorators around a leaf render. Both are
// pure functions with no shared state; they are safe to call on
// every frame and on every new snapshot.
package render

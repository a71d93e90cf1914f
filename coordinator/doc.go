// Package coordinator provides the coordinator pattern for navigation state:
// a TabCoordinator that owns the selected tab, ScreenCoordinators that each own
// one route.Stack and map routes to content, and a TabSet that composes them.
//
// Ownership runs one way. A TabSet (or any application struct embedding a
// TabCoordinator) strongly owns its screen coordinators; each screen
// coordinator only keeps a weak back-reference to its tab coordinator so it can
// request cross-area switches without keeping it alive.
//
// All operations are synchronous and expected to run on the UI event loop.
// Changes are announced through Subscribe callbacks after they are applied.
package coordinator

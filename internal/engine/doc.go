// Package engine implements the stack orchestration engine: reading the
// change graph, managing bookmarks and workspaces, navigating the stack,
// synchronizing with the remote trunk, submitting pull requests, and
// recovering from failure. All backend access goes through the jj package;
// the engine never touches the working copy by filesystem manipulation.
package engine

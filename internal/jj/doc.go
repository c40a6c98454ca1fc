// Package jj wraps the Jujutsu command-line backend. It is the only place
// that invokes the jj binary or interprets its templated text output; the
// rest of the application works with the typed records defined here.
package jj

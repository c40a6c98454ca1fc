// Package runtime wires the engine, service clients, and logger into a
// single context handed to every command. This avoids passing multiple
// parameters through the CLI layer.
package runtime

// Package modules detects development environments for the prompt.
//
// # Modules
//
// A Module inspects the working directory and environment snapshot and
// renders a short status fragment such as "🐍 api" or "🦀 mycrate". The
// built-in detectors cover Python, Node.js, Go, Rust, Ruby and Docker
// projects.
//
// # Sandboxing
//
// Modules never touch the filesystem directly. Context carries a
// SandboxedFS restricted to the working directory and the user home.
// Lookups that try to escape those roots fail closed, and file reads
// are capped at 1 MiB.
//
// # Failure Policy
//
// A module that fails to render is reported on stderr and skipped; the
// prompt renders with whatever modules succeeded. ZUSH_DISABLE_MODULES=1
// turns every module off, ZUSH_DISABLE_<ID>=1 (for example
// ZUSH_DISABLE_DOCKER=1) turns off one.
package modules

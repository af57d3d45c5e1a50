// Package hooks runs the optional build step against the staging tree.
//
// A build step is anything implementing Step. The stock implementation,
// Shell, interprets a POSIX shell script in-process: the script's top level
// runs first, then its build function is invoked if it defines one. Scripts
// can log through the pipeline's logger with the log builtin:
//
//	log info "generating textures"
//	log warn "no sounds found"
//
// Trust boundary: a hook is trusted code. It runs with the privileges of the
// process, sees the full host environment and may touch any file. Nothing
// here sandboxes it or bounds its running time beyond context cancellation.
// The only process state restored afterwards is the working directory.
package hooks

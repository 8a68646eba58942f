// Package layout resolves the fixed directory structure of a project
// workspace from a single root path and guarantees its existence on disk.
package layout

// Logical names of the workspace directories. The mapping from name to
// relative segment is fixed; only the root varies.
const (
	Raw       = "raw"
	Interim   = "interim"
	Processed = "processed"
	External  = "external"
	Figures   = "figures"
	Tables    = "tables"
	Logs      = "logs"
)

// names lists the logical names in declaration order, used wherever the
// layout is enumerated.
var names = []string{Raw, Interim, Processed, External, Figures, Tables, Logs}

// segments maps each logical name to its path relative to the root.
var segments = map[string][]string{
	Raw:       {"data", "raw"},
	Interim:   {"data", "interim"},
	Processed: {"data", "processed"},
	External:  {"data", "external"},
	Figures:   {"report", "figures"},
	Tables:    {"report", "tables"},
	Logs:      {"logs"},
}

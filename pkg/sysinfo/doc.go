// Package sysinfo produces the right-hand column of symfetch: one styled
// "Label: value" line per host fact.
//
// Facts come from a Probe. HostProbe reads them from the running system via
// gopsutil; tests substitute a fake. A Collector turns the configured field
// list into lines, dropping every field whose probe fails so that a broken
// probe never hides the rest of the column.
package sysinfo

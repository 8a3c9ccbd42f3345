// Package core wires configuration, rendering and system information into a
// single fetch: pick the left column, collect the right column, compose them
// and print the rows.
package core

// Package testutil provides fixtures for symfetch tests.
//
// Tests build their inputs inline: in-memory file systems (afero), small
// generated images, and config files written under t.TempDir().
package testutil

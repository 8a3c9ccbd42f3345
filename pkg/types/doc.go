// Package types defines the values passed between symfetch's configuration
// layer and its rendering core.
package types

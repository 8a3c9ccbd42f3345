package sysinfo

import "slices"

// Field names accepted in info.fields
const (
	FieldTitle     = "title"
	FieldSeparator = "separator"
	FieldOS        = "os"
	FieldHost      = "host"
	FieldKernel    = "kernel"
	FieldUptime    = "uptime"
	FieldShell     = "shell"
	FieldCPU       = "cpu"
	FieldMemory    = "memory"
)

// KnownFields lists every field in its default order
var KnownFields = []string{
	FieldTitle,
	FieldSeparator,
	FieldOS,
	FieldHost,
	FieldKernel,
	FieldUptime,
	FieldShell,
	FieldCPU,
	FieldMemory,
}

var labels = map[string]string{
	FieldOS:     "OS",
	FieldHost:   "Host",
	FieldKernel: "Kernel",
	FieldUptime: "Uptime",
	FieldShell:  "Shell",
	FieldCPU:    "CPU",
	FieldMemory: "Memory",
}

// IsKnownField reports whether name is a valid field
func IsKnownField(name string) bool {
	return slices.Contains(KnownFields, name)
}

// DefaultFields returns a copy of KnownFields
func DefaultFields() []string {
	return slices.Clone(KnownFields)
}

package sysinfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/layout"
	"github.com/symmetrysyndicate/symfetch/pkg/logging"
	"github.com/symmetrysyndicate/symfetch/pkg/styles"
)

// Provider yields the lines of the information column
type Provider interface {
	Lines() []string
}

// Collector formats probe results for the configured fields
type Collector struct {
	probe  Probe
	fields []string
	styles *styles.Registry
	logger zerolog.Logger
}

// NewCollector creates a collector. Nil fields selects DefaultFields.
func NewCollector(probe Probe, fields []string, reg *styles.Registry) *Collector {
	if fields == nil {
		fields = DefaultFields()
	}
	return &Collector{
		probe:  probe,
		fields: fields,
		styles: reg,
		logger: logging.GetLogger("sysinfo"),
	}
}

// Lines probes every field once, in order, omitting failed ones
func (c *Collector) Lines() []string {
	lines := make([]string, 0, len(c.fields))
	titleWidth := 0

	for _, field := range c.fields {
		switch field {
		case FieldTitle:
			title, width, err := c.title()
			if err != nil {
				c.logger.Debug().Err(err).Str("field", field).Msg("Probe failed")
				continue
			}
			titleWidth = width
			lines = append(lines, title)
		case FieldSeparator:
			width := titleWidth
			if width == 0 {
				width = 16
			}
			lines = append(lines, c.style("InfoSeparator", strings.Repeat("-", width)))
		default:
			value, err := c.value(field)
			if err != nil {
				c.logger.Debug().Err(err).Str("field", field).Msg("Probe failed")
				continue
			}
			lines = append(lines, c.style("InfoLabel", labels[field])+": "+c.style("InfoValue", value))
		}
	}
	return lines
}

func (c *Collector) title() (string, int, error) {
	name, err := c.probe.User()
	if err != nil {
		return "", 0, err
	}
	hostname, err := c.probe.Hostname()
	if err != nil {
		return "", 0, err
	}
	plain := name + "@" + hostname
	styled := c.style("InfoTitle", name) + "@" + c.style("InfoTitle", hostname)
	return styled, layout.DisplayWidth(plain), nil
}

func (c *Collector) value(field string) (string, error) {
	switch field {
	case FieldOS:
		return c.probe.OS()
	case FieldHost:
		if model, err := c.probe.HostModel(); err == nil {
			return model, nil
		}
		return c.probe.Hostname()
	case FieldKernel:
		return c.probe.Kernel()
	case FieldUptime:
		d, err := c.probe.Uptime()
		if err != nil {
			return "", err
		}
		return FormatUptime(d), nil
	case FieldShell:
		return c.probe.Shell()
	case FieldCPU:
		info, err := c.probe.CPU()
		if err != nil {
			return "", err
		}
		return FormatCPU(info), nil
	case FieldMemory:
		m, err := c.probe.Memory()
		if err != nil {
			return "", err
		}
		return FormatMemory(m), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown field %q", field)
	}
}

func (c *Collector) style(name, s string) string {
	if c.styles == nil {
		return s
	}
	return c.styles.Render(name, s)
}

// FormatUptime renders d as "2 days, 3 hours, 4 mins"
func FormatUptime(d time.Duration) string {
	total := int64(d / time.Minute)
	days := total / (24 * 60)
	hours := (total / 60) % 24
	mins := total % 60

	var parts []string
	add := func(n int64, unit string) {
		if n == 0 {
			return
		}
		if n != 1 {
			unit += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, unit))
	}
	add(days, "day")
	add(hours, "hour")
	add(mins, "min")

	if len(parts) == 0 {
		return "0 mins"
	}
	return strings.Join(parts, ", ")
}

// FormatCPU renders the model followed by the logical core count
func FormatCPU(info CPUInfo) string {
	model := info.Model
	if model == "" {
		model = "unknown"
	}
	if info.Cores > 0 {
		return fmt.Sprintf("%s (%d)", model, info.Cores)
	}
	return model
}

// FormatMemory renders used and total memory in IEC units
func FormatMemory(m MemoryInfo) string {
	out := humanize.IBytes(m.Used) + " / " + humanize.IBytes(m.Total)
	if m.Total > 0 {
		out += fmt.Sprintf(" (%d%%)", m.Used*100/m.Total)
	}
	return out
}

package sysinfo

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/spf13/afero"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
)

// CPUInfo describes the processor
type CPUInfo struct {
	Model string
	Cores int
}

// MemoryInfo is physical memory usage in bytes
type MemoryInfo struct {
	Used  uint64
	Total uint64
}

// Probe reads individual host facts. Each method may fail independently.
type Probe interface {
	User() (string, error)
	Hostname() (string, error)
	OS() (string, error)
	HostModel() (string, error)
	Kernel() (string, error)
	Uptime() (time.Duration, error)
	Shell() (string, error)
	CPU() (CPUInfo, error)
	Memory() (MemoryInfo, error)
}

// ErrUnavailable is returned for facts the platform does not expose
var ErrUnavailable = errors.New(errors.ErrNotFound, "not available")

// productNameFiles hold the DMI model name on Linux
var productNameFiles = []string{
	"/sys/devices/virtual/dmi/id/product_name",
	"/sys/firmware/devicetree/base/model",
}

// HostProbe reads facts from the running system
type HostProbe struct {
	fs     afero.Fs
	getenv func(string) string

	once sync.Once
	info *host.InfoStat
	err  error
}

// NewHostProbe creates a probe that reads firmware files through fs
func NewHostProbe(fs afero.Fs) *HostProbe {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &HostProbe{fs: fs, getenv: os.Getenv}
}

func (p *HostProbe) hostInfo() (*host.InfoStat, error) {
	p.once.Do(func() {
		p.info, p.err = host.Info()
		if p.err != nil {
			p.err = errors.Wrap(p.err, errors.ErrInternal, "reading host info")
		}
	})
	return p.info, p.err
}

func (p *HostProbe) User() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	if name := p.getenv("USER"); name != "" {
		return name, nil
	}
	return "", ErrUnavailable
}

func (p *HostProbe) Hostname() (string, error) {
	info, err := p.hostInfo()
	if err == nil && info.Hostname != "" {
		return info.Hostname, nil
	}
	name, err := os.Hostname()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "reading hostname")
	}
	return name, nil
}

func (p *HostProbe) OS() (string, error) {
	info, err := p.hostInfo()
	if err != nil {
		return "", err
	}
	parts := []string{}
	for _, s := range []string{info.Platform, info.PlatformVersion, info.KernelArch} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return runtime.GOOS, nil
	}
	return strings.Join(parts, " "), nil
}

func (p *HostProbe) HostModel() (string, error) {
	for _, path := range productNameFiles {
		data, err := afero.ReadFile(p.fs, path)
		if err != nil {
			continue
		}
		if model := strings.TrimSpace(strings.TrimRight(string(data), "\x00")); model != "" {
			return model, nil
		}
	}
	return "", ErrUnavailable
}

func (p *HostProbe) Kernel() (string, error) {
	info, err := p.hostInfo()
	if err != nil {
		return "", err
	}
	if info.KernelVersion == "" {
		return "", ErrUnavailable
	}
	return info.KernelVersion, nil
}

func (p *HostProbe) Uptime() (time.Duration, error) {
	info, err := p.hostInfo()
	if err != nil {
		return 0, err
	}
	return time.Duration(info.Uptime) * time.Second, nil
}

func (p *HostProbe) Shell() (string, error) {
	shell := p.getenv("SHELL")
	if shell == "" {
		return "", ErrUnavailable
	}
	return filepath.Base(shell), nil
}

func (p *HostProbe) CPU() (CPUInfo, error) {
	infos, err := cpu.Info()
	if err != nil {
		return CPUInfo{}, errors.Wrap(err, errors.ErrInternal, "reading cpu info")
	}
	if len(infos) == 0 {
		return CPUInfo{}, ErrUnavailable
	}
	cores, err := cpu.Counts(true)
	if err != nil {
		return CPUInfo{}, errors.Wrap(err, errors.ErrInternal, "counting cpus")
	}
	return CPUInfo{Model: strings.TrimSpace(infos[0].ModelName), Cores: cores}, nil
}

func (p *HostProbe) Memory() (MemoryInfo, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryInfo{}, errors.Wrap(err, errors.ErrInternal, "reading memory")
	}
	return MemoryInfo{Used: vm.Used, Total: vm.Total}, nil
}

package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Sample queries the host for current overall CPU load and memory usage.
// Memory percentage is based on active memory, not used memory.
func Sample() (UsageSample, error) {
	pcts, err := cpu.Percent(0, false)
	if err != nil {
		return UsageSample{}, fmt.Errorf("cpu load: %w", err)
	}
	if len(pcts) == 0 {
		return UsageSample{}, errors.New("cpu load: no data")
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return UsageSample{}, fmt.Errorf("memory: %w", err)
	}
	if vm.Total == 0 {
		return UsageSample{}, errors.New("memory: zero total reported")
	}

	return UsageSample{
		CPUPercent: pcts[0],
		MemActive:  vm.Active,
		MemTotal:   vm.Total,
	}, nil
}

// HostSummary returns a one-line description of the host for console output.
// Returns an empty string if host information is unavailable.
func HostSummary() string {
	info, err := host.Info()
	if err != nil {
		return ""
	}
	up := time.Duration(info.Uptime) * time.Second
	return fmt.Sprintf("%s (%s %s, kernel %s), up %s",
		info.Hostname, info.Platform, info.PlatformVersion, info.KernelVersion, up)
}

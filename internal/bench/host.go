package bench

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// Host describes the machine a benchmark ran on.
type Host struct {
	Platform string
	CPU      string
	Memory   string
}

// DetectHost reads the host description; fields that cannot be read stay "unknown".
func DetectHost() Host {
	h := Host{Platform: "unknown", CPU: "unknown", Memory: "unknown"}
	if info, err := host.Info(); err == nil && info != nil {
		h.Platform = info.Platform
		if h.Platform == "" {
			h.Platform = info.OS
		}
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		h.CPU = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		h.Memory = fmt.Sprintf("%d GB", vm.Total/1024/1024/1024)
	}
	return h
}

// String joins the fields; empty ones read "unknown", and so does a zero Host.
func (h Host) String() string {
	if h == (Host{}) {
		return "unknown"
	}
	return fmt.Sprintf("%s, %s, %s", orUnknown(h.Platform), orUnknown(h.CPU), orUnknown(h.Memory))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

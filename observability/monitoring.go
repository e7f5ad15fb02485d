package observability

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats carries technical self-metrics exposed by the debug surface.
type ProcessStats struct {
	PID        int
	RSSBytes   uint64
	CPUPercent float64
	Status     string
}

// CollectSelf reads memory, CPU and OS status of the current process.
func CollectSelf() (ProcessStats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessStats{}, err
	}

	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	status, err := p.Status()
	if err != nil {
		return ProcessStats{}, err
	}

	return ProcessStats{
		PID:        os.Getpid(),
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPercent,
		Status:     status,
	}, nil
}

package hardware

import (
	"context"
	"runtime"
)

// HostDetector probes the local machine using cheap OS facilities:
// runtime metadata, /proc on Linux, sysctl on macOS and nvidia-smi when
// it is on PATH. Every probe is optional; whatever fails is simply left
// unknown on the returned profile.
type HostDetector struct {
	smi *SMI
}

// NewHostDetector creates a detector with the default nvidia-smi path.
func NewHostDetector() *HostDetector {
	return &HostDetector{smi: NewSMI("")}
}

func (d *HostDetector) Name() string {
	return "host"
}

// Detect never returns an error for individual probe failures; the
// profile just carries fewer known fields.
func (d *HostDetector) Detect(ctx context.Context) (*Profile, error) {
	p := &Profile{
		OS:             OSFromGOOS(runtime.GOOS),
		CPUCores:       runtime.NumCPU(),
		IsAppleSilicon: runtime.GOOS == "darwin" && runtime.GOARCH == "arm64",
	}

	if gb, err := probeMemoryGB(); err == nil && gb > 0 {
		p.ApproxMemoryGB = gb
	}

	p.GPUDescriptor = d.probeGPU(ctx)

	return p, nil
}

// probeGPU tries nvidia-smi first, then falls back to the Apple chip
// brand string on macOS. Returns "" when nothing could be determined.
func (d *HostDetector) probeGPU(ctx context.Context) string {
	if name, err := d.smi.GPUName(ctx); err == nil && name != "" {
		return name
	}
	if runtime.GOOS == "darwin" {
		if chip := probeChipBrand(); chip != "" {
			return chip
		}
	}
	return ""
}

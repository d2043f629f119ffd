//go:build darwin

package hardware

import "golang.org/x/sys/unix"

func probeMemoryGB() (float64, error) {
	bytes, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, ErrProbeFailed.WithCause(err)
	}
	return float64(bytes) / (1024 * 1024 * 1024), nil
}

// probeChipBrand returns the CPU brand string, e.g. "Apple M3 Max".
// On Apple Silicon the same silicon drives the GPU, so the brand string
// doubles as a usable GPU descriptor.
func probeChipBrand() string {
	brand, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return ""
	}
	return brand
}

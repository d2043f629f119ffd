//go:build linux

package hardware

import "os"

func probeMemoryGB() (float64, error) {
	file, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0, ErrProbeFailed.WithCause(err)
	}
	defer file.Close()

	return parseMemInfoGB(file), nil
}

func probeChipBrand() string {
	return ""
}

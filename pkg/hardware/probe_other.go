//go:build !linux && !darwin

package hardware

func probeMemoryGB() (float64, error) {
	return 0, ErrProbeFailed
}

func probeChipBrand() string {
	return ""
}

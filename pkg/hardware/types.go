// Package hardware derives a coarse, best-effort profile of the running
// machine. The profile only biases catalog ranking; it is never treated
// as an authoritative inventory, and every field except OS may be
// unknown without breaking anything downstream.
package hardware

// OS identifies the host operating system family.
type OS string

const (
	OSMacOS   OS = "macos"
	OSWindows OS = "windows"
	OSLinux   OS = "linux"
	OSUnknown OS = "unknown"
)

// Profile is an approximate description of the host. Zero values mean
// "unknown": scoring treats an unknown field as contributing nothing
// rather than as an error.
type Profile struct {
	OS             OS      `json:"os"`
	CPUCores       int     `json:"cpu_cores,omitempty"`
	ApproxMemoryGB float64 `json:"approx_memory_gb,omitempty"`
	IsAppleSilicon bool    `json:"is_apple_silicon"`
	GPUDescriptor  string  `json:"gpu_descriptor,omitempty"`
}

// HasMemory reports whether a RAM estimate was obtained.
func (p *Profile) HasMemory() bool {
	return p != nil && p.ApproxMemoryGB > 0
}

// HasCores reports whether a logical core count was obtained.
func (p *Profile) HasCores() bool {
	return p != nil && p.CPUCores > 0
}

// HasGPU reports whether a GPU descriptor was obtained.
func (p *Profile) HasGPU() bool {
	return p != nil && p.GPUDescriptor != ""
}

// OSFromGOOS maps a runtime.GOOS value onto the OS enum.
func OSFromGOOS(goos string) OS {
	switch goos {
	case "darwin":
		return OSMacOS
	case "windows":
		return OSWindows
	case "linux":
		return OSLinux
	default:
		return OSUnknown
	}
}

package hardware

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const defaultSMIPath = "nvidia-smi"

// SMI shells out to nvidia-smi for the GPU product name.
type SMI struct {
	path    string
	timeout time.Duration
}

func NewSMI(path string) *SMI {
	if path == "" {
		path = defaultSMIPath
	}
	return &SMI{
		path:    path,
		timeout: 2 * time.Second,
	}
}

func (s *SMI) SetTimeout(d time.Duration) {
	s.timeout = d
}

// GPUName returns a descriptor like "NVIDIA GeForce RTX 3060" for the
// first attached GPU. Fails fast when nvidia-smi is missing.
func (s *SMI) GPUName(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.path, "--query-gpu=name", "--format=csv,noheader")
	out, err := cmd.Output()
	if err != nil {
		return "", ErrProbeFailed.WithCause(err)
	}

	return firstSMILine(string(out)), nil
}

// firstSMILine extracts the first non-empty line of nvidia-smi csv
// output.
func firstSMILine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			return name
		}
	}
	return ""
}

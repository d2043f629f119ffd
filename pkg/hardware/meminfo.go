package hardware

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// parseMemInfoGB extracts MemTotal from /proc/meminfo content and
// converts it to gigabytes. Returns 0 when the field is missing or
// unparseable.
func parseMemInfoGB(r io.Reader) float64 {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "MemTotal" {
			continue
		}
		value := strings.TrimSpace(parts[1])
		value = strings.TrimSuffix(value, " kB")
		kb, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0
		}
		return float64(kb) / (1024 * 1024)
	}
	return 0
}

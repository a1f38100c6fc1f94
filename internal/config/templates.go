package config

import (
	"fmt"
	"os"
)

func Template() string {
	return bitsctlTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(bitsctlTemplate), 0o600)
}

const bitsctlTemplate = `input_dir = "inputs"
day = 16
output = "text"
max_depth = 1024
max_packets = 1048576
metrics_file = ""
log_level = "info"
`

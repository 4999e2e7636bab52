package main

import (
	"io"
	"os"
)

// readSource reads args[0] as a file path, or stdin when no path is
// given, matching the original spec's "no files" library contract: the
// CLI is the one place a source string has to come from somewhere.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

package assets

import (
	"fmt"
	"os"
)

// LoadShader reads a GLSL source file. The graphics backend takes care
// of null termination.
func LoadShader(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	return string(b), nil
}

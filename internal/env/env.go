// Package env loads .env files before the CLI reads its configuration.
package env

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Load reads .env from the current directory and from the directory of the
// executable. A missing file is not an error; explicit environment variables
// always win because godotenv never overrides them.
func Load() {
	_ = godotenv.Load()

	execPath, err := os.Executable()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(filepath.Dir(execPath), ".env"))
}

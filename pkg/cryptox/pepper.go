package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile string
)

// SetPepperPath points the package at the file holding the password pepper.
// When the path is empty, hashing proceeds without a pepper.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepperFile = file
	pepper = ""
}

// GetPepper returns the configured pepper, loading or generating it on first
// use. A missing pepper file is created with a fresh random value so restarts
// keep verifying existing hashes.
func GetPepper() string {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" || pepperFile == "" {
		return pepper
	}

	loaded, err := loadOrGeneratePepper(pepperFile)
	if err != nil {
		// A half-configured pepper would silently produce unverifiable
		// hashes, so refuse to continue.
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}
	pepper = loaded
	return pepper
}

func loadOrGeneratePepper(file string) (string, error) {
	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		raw := make([]byte, keyLength)
		if _, err := rand.Read(raw); err != nil {
			return "", err
		}
		generated := base64.RawURLEncoding.EncodeToString(raw)
		if err := os.WriteFile(file, []byte(generated), 0600); err != nil {
			return "", err
		}
		return generated, nil
	}

	existing, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(existing), nil
}

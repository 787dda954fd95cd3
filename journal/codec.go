package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Encode writes rec as msgpack
func Encode(w io.Writer, rec Recording) error {
	if err := msgpack.NewEncoder(w).Encode(&rec); err != nil {
		return fmt.Errorf("failed to encode recording: %w", err)
	}
	return nil
}

// Decode reads a recording and checks its header
func Decode(r io.Reader) (Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return rec, fmt.Errorf("failed to decode recording: %w", err)
	}
	if _, err := uuid.Parse(rec.Header.ID); err != nil {
		return rec, fmt.Errorf("recording id %q: %w", rec.Header.ID, err)
	}
	if rec.Header.Version != FormatVersion {
		return rec, fmt.Errorf("recording version %d, this build replays version %d", rec.Header.Version, FormatVersion)
	}
	return rec, nil
}

// SaveFile writes rec to path, creating the parent directory
func SaveFile(path string, rec Recording) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create recording dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create recording: %w", err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func LoadFile(path string) (Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recording{}, fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

package app

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"unicode/utf8"
)

const initialLineBuffer = 64 * 1024

// ReadLines loads the whole file into memory, one entry per line.
// Any failure to open the path is reported as ErrFileNotFound without the OS detail.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrFileNotFound
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		return nil, ErrFileNotFound
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt32)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: stream did not contain valid UTF-8", ErrIO)
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return lines, nil
}

package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a wordlist file. In single-column format every non-blank
// line holds one word; in diceware format each line holds a dice-roll key
// followed by the word, and only the word column is kept.
func LoadFile(path string, dicewareFormat bool) (List, error) {
	info, err := os.Stat(path)
	if err != nil {
		return List{}, fmt.Errorf("%w: %s does not exist", ErrUnavailable, path)
	}
	if !info.Mode().IsRegular() {
		return List{}, fmt.Errorf("%w: %s is not a regular file", ErrUnavailable, path)
	}
	if info.Size() == 0 {
		return List{}, fmt.Errorf("%w: %s is empty", ErrUnavailable, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return List{}, fmt.Errorf("%w: cannot read %s: %v", ErrUnavailable, path, err)
	}
	defer f.Close()

	var words []string
	lineNum := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if dicewareFormat {
			cols := strings.Fields(line)
			if len(cols) < 2 {
				return List{}, fmt.Errorf("%w: %s line %d has no word column", ErrUnavailable, path, lineNum)
			}
			words = append(words, cols[1])
		} else {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return List{}, fmt.Errorf("%w: cannot read %s: %v", ErrUnavailable, path, err)
	}

	if len(words) == 0 {
		return List{}, fmt.Errorf("%w: %s contains no words", ErrUnavailable, path)
	}

	return List{Name: filepath.Base(path), Words: words}, nil
}

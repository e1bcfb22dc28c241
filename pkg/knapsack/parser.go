package knapsack

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/evoknap/evoknap/pkg/errors"
)

// Load reads a knapsack instance from a text file in the format used by
// https://github.com/JorikJooken/knapsackProblemInstances:
//
//	3
//	1 3 8
//	2 2 8
//	3 9 1
//	10
//
// The first line is the number of items N, the next N lines are
// "id value weight" triples, and the last line is the capacity.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ParseFailed, "opening instance file")
	}
	defer f.Close()

	inst, err := Parse(f, filepath.Base(path))
	if err != nil {
		return nil, errors.WithFields(err, errors.Fields{"path": path})
	}
	return inst, nil
}

// Parse reads an instance in the same format from any reader. The name is
// attached to the instance for reporting.
func Parse(r io.Reader, name string) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line, err := nextLine(scanner)
	if err != nil {
		return nil, errors.Wrap(err, errors.ParseFailed, "reading item count")
	}
	numItems, err := strconv.Atoi(line)
	if err != nil {
		return nil, errors.Wrap(err, errors.ParseFailed, "parsing item count")
	}
	if numItems <= 0 {
		return nil, errors.Newf(errors.ParseFailed, "item count must be positive, got %d", numItems)
	}

	items := make([]Item, 0, numItems)
	for n := 0; n < numItems; n++ {
		line, err := nextLine(scanner)
		if err != nil {
			return nil, errors.WithFields(
				errors.Wrap(err, errors.ParseFailed, "reading item line; is the item count on the first line correct?"),
				errors.Fields{"item": n},
			)
		}
		item, err := parseItem(line)
		if err != nil {
			return nil, errors.WithFields(err, errors.Fields{"item": n})
		}
		items = append(items, item)
	}

	line, err = nextLine(scanner)
	if err != nil {
		return nil, errors.Wrap(err, errors.ParseFailed, "reading capacity; this might mean the item count was too large")
	}
	capacity, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, errors.ParseFailed, "parsing capacity")
	}

	return New(name, items, capacity)
}

// nextLine returns the next non-empty line, trimmed.
func nextLine(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

// parseItem parses an "id value weight" triple.
func parseItem(line string) (Item, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Item{}, errors.Newf(errors.ParseFailed,
			"item line %q should have 3 whitespace-separated fields", line)
	}
	var nums [3]uint64
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Item{}, errors.Wrap(err, errors.ParseFailed, "parsing item field")
		}
		nums[i] = n
	}
	return Item{ID: nums[0], Value: nums[1], Weight: nums[2]}, nil
}

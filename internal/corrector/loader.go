package corrector

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// LoadModel reads a frequency dictionary from path and builds a model.
func LoadModel(path string) (*FrequencyModel, error) {
	counts, err := LoadCounts(path)
	if err != nil {
		return nil, err
	}
	return NewFrequencyModel(counts)
}

// LoadCounts reads a word->count table from path. Files ending in .json
// carry a JSON object (the model builder's output); anything else is
// treated as a plain-text dictionary with one "word count" pair per line.
func LoadCounts(path string) (map[string]int64, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return loadCountsJSON(path)
	}
	return loadCountsText(path)
}

func loadCountsJSON(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()
	var counts map[string]int64
	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&counts); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}
	return counts, nil
}

// loadCountsText parses a whitespace-separated "word count" dictionary.
// The file is memory-mapped so large corpus dictionaries are scanned
// without buffering a second copy; every word is copied out of the mapping
// before it is released.
func loadCountsText(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary: %w", err)
	}
	if st.Size() == 0 {
		return map[string]int64{}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dictionary %s: %w", path, err)
	}
	defer data.Unmap()

	counts := make(map[string]int64)
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			// some dictionaries carry float counts
			fv, err2 := strconv.ParseFloat(parts[1], 64)
			if err2 != nil {
				continue
			}
			count = int64(fv)
		}
		counts[parts[0]] += count
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan dictionary: %w", err)
	}
	return counts, nil
}

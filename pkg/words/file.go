package words

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/wordtrie/pkg/errors"
)

// ReadFile loads a word list from disk. The format follows the extension:
//
//   - .json: an array of strings or an object {"words": [...]}
//   - .csv: the first column of every row
//   - anything else: one word per line
//
// The returned words are normalized.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "word file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var words []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		words, err = parseJSON(data)
	case ".csv":
		words, err = parseCSV(bytes.NewReader(data))
	default:
		words, err = parseLines(bytes.NewReader(data))
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	return Normalize(words), nil
}

func parseLines(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	return words, sc.Err()
}

func parseJSON(data []byte) ([]string, error) {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var obj wordList
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("expected array of strings or {\"words\": [...]}: %w", err)
	}
	return obj.Words, nil
}

func parseCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(records))
	for _, row := range records {
		if len(row) > 0 {
			words = append(words, row[0])
		}
	}
	return words, nil
}

// wordList is the {"words": [...]} shape shared by files and model replies.
type wordList struct {
	Words []string `json:"words"`
}

// Package source reads the raw rows of the account activity and price history
// files into whatif.Row values.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/whatif"
	"github.com/gocarina/gocsv"
)

var bom = []byte("\ufeff")

// ReadCSV reads a CSV file with a header line into rows keyed by column name.
//
// A leading byte order mark is ignored and column names are trimmed. The data
// ends at the first blank line, exports put their disclaimer after it.
func ReadCSV(r io.Reader) ([]whatif.Row, error) {
	var data bytes.Buffer
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for first := true; scanner.Scan(); first = false {
		line := scanner.Bytes()
		if first {
			line = bytes.TrimPrefix(line, bom)
		}
		if len(bytes.TrimSpace(line)) == 0 || string(bytes.TrimSpace(line)) == `""` {
			if first {
				continue
			}
			break
		}
		data.Write(line)
		data.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if data.Len() == 0 {
		return nil, nil
	}

	maps, err := gocsv.CSVToMaps(&data)
	if err != nil {
		return nil, err
	}
	rows := make([]whatif.Row, 0, len(maps))
	for _, m := range maps {
		row := make(whatif.Row, len(m))
		for k, v := range m {
			row[strings.TrimSpace(k)] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadCSVFile reads the CSV file at 'path'.
func ReadCSVFile(path string) ([]whatif.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// ReadJSON reads the array of objects selected by the JSONPath expression
// 'path' (e.g. "$.data") into rows.
//
// Each object field is renamed with 'fields' (JSON field name to column name),
// unmapped fields keep their name. Values are converted to strings.
func ReadJSON(r io.Reader, path string, fields map[string]string) ([]whatif.Row, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if path == "" {
		path = "$"
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	list, ok := selected.([]any)
	if !ok {
		return nil, fmt.Errorf("%q does not select an array but %T", path, selected)
	}

	rows := make([]whatif.Row, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%q item %d is not an object but %T", path, i, item)
		}
		row := make(whatif.Row, len(obj))
		for k, v := range obj {
			if col, ok := fields[k]; ok {
				k = col
			}
			row[k] = stringify(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadJSONFile reads the JSON file at 'path', see ReadJSON.
func ReadJSONFile(path, selector string, fields map[string]string) ([]whatif.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ReadJSON(f, selector, fields)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

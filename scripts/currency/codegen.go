package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

type currency struct {
	Name  string // display name used by the free-text parser
	Code  string
	Num   string
	Scale string
	Unit  string // word substituted for 元 in standard readings
}

func main() {
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting records: %v", err))
	}

	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToCurrencies sorts records by code, keeping XXX at index 0 so
// that the zero value of Currency stays the unknown currency.
func convertDataToCurrencies(data [][]string) ([]currency, error) {
	sort.SliceStable(data, func(i, j int) bool {
		a, b := data[i][1], data[j][1]
		switch {
		case a == "XXX":
			return b != "XXX"
		case b == "XXX":
			return false
		}
		return a < b
	})

	currs := make([]currency, 0, len(data))
	for n, rec := range data {
		if len(rec) != 5 {
			return nil, fmt.Errorf("record %d: want 5 fields, got %d", n+1, len(rec))
		}
		currs = append(currs, currency{
			Name:  rec[0],
			Code:  rec[1],
			Num:   rec[2],
			Scale: rec[3],
			Unit:  rec[4],
		})
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, currs); err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	if _, err := writer.Write(content); err != nil {
		return err
	}
	return writer.Flush()
}

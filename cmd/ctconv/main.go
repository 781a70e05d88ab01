// Command ctconv converts between CT binary tables and XLSX
// spreadsheets. Given a .ct file it writes a sibling .xlsx file;
// given a .xlsx file it writes a sibling .ct file; given a directory
// it recursively converts every .ct file underneath it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JordanRO2/RO2-Table-Converter/matrix"
	"github.com/JordanRO2/RO2-Table-Converter/table"
	"github.com/JordanRO2/RO2-Table-Converter/xlsxrow"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <path>\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "ctconv:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return convertDir(path)
	}

	return convertFile(path)
}

func convertDir(root string) error {
	var failed bool

	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".ct") {
			return nil
		}

		if convErr := convertFile(p); convErr != nil {
			fmt.Fprintln(os.Stderr, "ctconv:", convErr)
			failed = true
		}

		return nil
	})
	if err != nil {
		return err
	}

	if failed {
		return fmt.Errorf("one or more files failed to convert")
	}

	return nil
}

func convertFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ct":
		return convertCTToXLSX(path)
	case ".xlsx":
		return convertXLSXToCT(path)
	default:
		return fmt.Errorf("%s: unrecognized extension", path)
	}
}

func convertCTToXLSX(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	t, warnings, err := table.Read(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "ctconv: %s: %s\n", path, w.String())
	}

	sheet := &xlsxSheet{path: outputPath(path, ".xlsx")}
	if err := xlsxrow.FromMatrix(sheet, matrix.Project(t)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func convertXLSXToCT(path string) error {
	sheet := &xlsxSheet{path: path}

	m, err := xlsxrow.ToMatrix(sheet)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	t, err := matrix.Lift(m, "")
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out, err := table.Write(t, table.WithSourceModTime(info.ModTime()))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return os.WriteFile(outputPath(path, ".ct"), out, 0o644)
}

// outputPath derives the sibling conversion target for path: the
// "_converted" suffix is stripped from the base name if present, and
// ext is appended in its place.
func outputPath(path, ext string) string {
	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.TrimSuffix(base, "_converted")

	return filepath.Join(dir, base+ext)
}

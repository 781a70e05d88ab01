package main

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/JordanRO2/RO2-Table-Converter/xlsxrow"
)

// xlsxSheet is the smallest possible OOXML spreadsheet: one sheet, no
// styles, no shared-string table, every cell an inline string. It
// exists only so the CLI has something concrete to hand to
// xlsxrow.RowSource/RowSink; styling and table-object rendering stay
// out of scope, and no third-party XLSX library is available in this
// module's dependency set, so this is stdlib-only (archive/zip,
// encoding/xml) by necessity rather than preference.
type xlsxSheet struct {
	path string
	rows [][]string
}

var (
	_ xlsxrow.RowSource = (*xlsxSheet)(nil)
	_ xlsxrow.RowSink   = (*xlsxSheet)(nil)
)

func (s *xlsxSheet) Rows() ([][]string, error) {
	if s.rows != nil {
		return s.rows, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("xlsxio: open %s as zip: %w", s.path, err)
	}

	var sheetXML []byte
	for _, zf := range zr.File {
		if zf.Name == "xl/worksheets/sheet1.xml" {
			rc, err := zf.Open()
			if err != nil {
				return nil, err
			}
			sheetXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, err
			}
			break
		}
	}

	if sheetXML == nil {
		return nil, fmt.Errorf("xlsxio: %s has no xl/worksheets/sheet1.xml", s.path)
	}

	rows, err := decodeSheetXML(sheetXML)
	if err != nil {
		return nil, err
	}

	s.rows = rows
	return rows, nil
}

func (s *xlsxSheet) WriteRows(rows [][]string) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	if err := writeZipEntry(zw, "[Content_Types].xml", contentTypesXML); err != nil {
		return err
	}
	if err := writeZipEntry(zw, "_rels/.rels", rootRelsXML); err != nil {
		return err
	}
	if err := writeZipEntry(zw, "xl/workbook.xml", workbookXML); err != nil {
		return err
	}
	if err := writeZipEntry(zw, "xl/_rels/workbook.xml.rels", workbookRelsXML); err != nil {
		return err
	}
	if err := writeZipEntry(zw, "xl/worksheets/sheet1.xml", encodeSheetXML(rows)); err != nil {
		return err
	}

	return zw.Close()
}

func writeZipEntry(zw *zip.Writer, name string, content []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}

type xlSheetData struct {
	XMLName xml.Name `xml:"worksheet"`
	Rows    []xlRow  `xml:"sheetData>row"`
}

type xlRow struct {
	Cells []xlCell `xml:"c"`
}

type xlCell struct {
	Type  string `xml:"t,attr"`
	Value string `xml:"is>t"`
}

func decodeSheetXML(data []byte) ([][]string, error) {
	var sheet xlSheetData
	if err := xml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("xlsxio: decode sheet xml: %w", err)
	}

	rows := make([][]string, len(sheet.Rows))
	for i, r := range sheet.Rows {
		cells := make([]string, len(r.Cells))
		for j, c := range r.Cells {
			cells[j] = c.Value
		}
		rows[i] = cells
	}

	return rows, nil
}

func encodeSheetXML(rows [][]string) []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>`)

	for _, row := range rows {
		buf.WriteString("<row>")
		for _, v := range row {
			buf.WriteString(`<c t="inlineStr"><is><t>`)
			xml.EscapeText(&buf, []byte(v))
			buf.WriteString(`</t></is></c>`)
		}
		buf.WriteString("</row>")
	}

	buf.WriteString(`</sheetData></worksheet>`)
	return buf.Bytes()
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`

const workbookXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets><sheet name="Sheet1" sheetId="1" r:id="rId1"/></sheets>
</workbook>`

const workbookRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`

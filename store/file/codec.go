package file

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	nt "colman/entity"
)

const (
	delim     = "/"
	minFields = 3
)

var (
	escaper   = strings.NewReplacer("%", "%25", "/", "%2F", "\r", "%0D", "\n", "%0A")
	unescaper = strings.NewReplacer("%2F", "/", "%2f", "/", "%0D", "\r", "%0d", "\r", "%0A", "\n", "%0a", "\n", "%25", "%")
)

// Encode writes one line per column: id/visible/width/header.
func Encode(columns []nt.Column) []byte {

	var buf bytes.Buffer
	for _, col := range columns {
		fields := []string{
			escaper.Replace(col.Id),
			strconv.FormatBool(col.Visible),
			escaper.Replace(col.Width),
			escaper.Replace(col.Header),
		}
		buf.WriteString(strings.Join(fields, delim))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Decode reads columns written by Encode.
// Lines with fewer than three fields are skipped, however long they are.
func Decode(rdr io.Reader) (columns []nt.Column, err error) {

	columns = []nt.Column{}
	brd := bufio.NewReader(rdr)
	for {
		line, rerr := brd.ReadString('\n')
		if line != "" {
			col, ok := decodeLine(strings.TrimRight(line, "\n"))
			if ok {
				columns = append(columns, col)
			}
		}

		if rerr == io.EOF {
			return
		}
		if rerr != nil {
			err = errors.Wrapf(rerr, "failed to read settings")
			return
		}
	}
}

// unexported

func decodeLine(line string) (col nt.Column, ok bool) {

	fields := strings.Split(strings.TrimRight(line, "\r"), delim)
	if len(fields) < minFields {
		return
	}

	col = nt.Column{
		Id:      unescaper.Replace(fields[0]),
		Visible: strings.EqualFold(fields[1], "true"),
		Width:   unescaper.Replace(fields[2]),
	}
	if len(fields) > minFields {
		// unescaped headers from older records may hold extra delimiters
		col.Header = unescaper.Replace(strings.Join(fields[minFields:], delim))
	}
	ok = true
	return
}

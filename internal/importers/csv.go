package importers

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mrlokans/businesscards/internal/cards"
	"github.com/mrlokans/businesscards/internal/entities"
)

// ExportHeader is the header written by the CSV exporter. Files starting
// with it are read in the export column layout.
const ExportHeader = "Id,Name,Gender,DateOfBirth,Email,Phone,Photo,Address"

const (
	minImportFields = 6
	minExportFields = 8
)

// CSVDecoder reads cards from comma-separated lines.
//
// The first non-blank line is a header and is discarded. Import column
// order is Name,Gender,DateOfBirth,Email,Phone,Address[,Photo], split on
// literal commas with no quoting. Files that start with ExportHeader use
// the export order and honour quoted Name and Address fields.
type CSVDecoder struct{}

var _ Decoder = (*CSVDecoder)(nil)

func NewCSVDecoder() *CSVDecoder {
	return &CSVDecoder{}
}

func (d *CSVDecoder) Format() string {
	return "csv"
}

// Decode implements Decoder. Rows with too few fields are skipped; a row
// with an unparsable date fails the whole file.
func (d *CSVDecoder) Decode(r io.Reader) ([]Record, error) {
	reader := bufio.NewReader(r)

	var records []Record
	headerSeen := false
	exportLayout := false
	lineNum := 0

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, cards.NewStructuralError(cards.KindInvalidCSVFormat, "Failed to read CSV file", err)
		}
		if line == "" && err != nil {
			break
		}
		lineNum++
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) != "" {
			if !headerSeen {
				headerSeen = true
				exportLayout = strings.EqualFold(strings.TrimSpace(line), ExportHeader)
			} else {
				rec, ok, parseErr := parseCSVLine(line, lineNum, exportLayout)
				if parseErr != nil {
					return nil, parseErr
				}
				if ok {
					records = append(records, rec)
				}
			}
		}

		if err != nil {
			break
		}
	}

	return records, nil
}

func parseCSVLine(line string, lineNum int, exportLayout bool) (Record, bool, error) {
	if exportLayout {
		values, err := splitQuoted(line)
		if err != nil {
			return Record{}, false, cards.NewStructuralError(
				cards.KindInvalidCSVFormat,
				fmt.Sprintf("Invalid quoting on line %d", lineNum),
				err,
			)
		}
		if len(values) < minExportFields {
			return Record{}, false, nil
		}
		last := len(values) - 1
		// Photo sits between Phone and Address; a data-URI photo contains
		// a comma, so everything between them belongs to it.
		rec, err := buildCSVRecord(lineNum, values[1], values[2], values[3], values[4], values[5],
			values[last], strings.Join(values[6:last], ","))
		if err != nil {
			return Record{}, false, err
		}
		if id, convErr := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); convErr == nil {
			rec.ID = uint(id)
		}
		return rec, true, nil
	}

	values := strings.Split(line, ",")
	if len(values) < minImportFields {
		return Record{}, false, nil
	}
	photo := ""
	if len(values) > minImportFields {
		photo = values[6]
	}
	rec, err := buildCSVRecord(lineNum, values[0], values[1], values[2], values[3], values[4], values[5], photo)
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

func buildCSVRecord(lineNum int, name, gender, dob, email, phone, address, photo string) (Record, error) {
	date, err := entities.ParseDate(dob)
	if err != nil {
		return Record{}, cards.NewStructuralError(
			cards.KindInvalidCSVFormat,
			fmt.Sprintf("Invalid DateOfBirth on line %d", lineNum),
			err,
		)
	}

	return Record{
		Position: lineNum,
		Candidate: entities.Candidate{
			Name:        name,
			Gender:      gender,
			DateOfBirth: date,
			Email:       email,
			Phone:       phone,
			Address:     address,
			Photo:       lenientPhoto(photo),
		},
	}, nil
}

// splitQuoted splits one exported line, honouring the quotes the exporter
// puts around Name and Address.
func splitQuoted(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.Read()
}

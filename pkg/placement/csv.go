package placement

import "strings"

// ParseCSV parses raw map data into records. The first line defines the
// field names; every following line is split positionally on commas. A
// row with fewer columns than headers simply leaves the trailing fields
// absent, and a row with extra columns drops the surplus; a malformed
// row never fails the whole parse. Quoted fields with embedded commas
// are not supported.
func ParseCSV(raw string) []Record {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	headers := splitRow(lines[0])

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitRow(line)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(values) {
				rec[h] = values[i]
			}
		}
		records = append(records, rec)
	}

	return records
}

func splitRow(line string) []string {
	parts := strings.Split(strings.TrimRight(line, "\r"), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

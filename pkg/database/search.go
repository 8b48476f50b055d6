package database

import "strings"

// ConversionsByCode finds past conversions whose input or output matches
// the given digit string, in either direction.
func ConversionsByCode(code string, limit, offset int) ([]Conversion, int64, error) {
	code = strings.TrimSpace(code)

	q := DB.Model(&Conversion{}).Where("input = ? OR output = ?", code, code)

	var total int64
	q.Count(&total)

	var conversions []Conversion
	if err := q.
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&conversions).Error; err != nil {
		return nil, 0, err
	}

	return conversions, total, nil
}

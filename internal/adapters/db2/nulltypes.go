package db2

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
)

// isoTimestamp is the layout catalog timestamps are rendered with.
// Db2 for i timestamps carry no zone, so neither does the output.
const isoTimestamp = "2006-01-02T15:04:05"

// Text is a nullable character column. It serializes as a JSON string,
// or null when the column is null.
type Text struct {
	sql.NullString
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.String)
}

// Integer is a nullable integer column. It serializes as a JSON number,
// or null when the column is null.
type Integer struct {
	sql.NullInt64
}

// MarshalJSON implements json.Marshaler.
func (i Integer) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(i.Int64)
}

// Timestamp is a nullable timestamp column, normalized to ISO 8601 text.
type Timestamp struct {
	sql.NullTime
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(isoTimestamp))
}

// Number is a nullable arbitrary-precision numeric column. The value is
// kept as text so DECIMAL columns never lose precision on the way to
// JSON; it serializes as a JSON string, or null.
type Number struct {
	Valid bool
	Value string
}

// Scan implements sql.Scanner, accepting whatever representation the
// ODBC driver hands back for a DECIMAL or BIGINT column.
func (n *Number) Scan(src interface{}) error {
	n.Valid, n.Value = false, ""
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		n.Valid, n.Value = true, v
	case []byte:
		n.Valid, n.Value = true, string(v)
	case int64:
		n.Valid, n.Value = true, strconv.FormatInt(v, 10)
	case float64:
		n.Valid, n.Value = true, strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Errorf("db2: cannot scan %T into Number", src)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

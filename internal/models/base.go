// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
)

// IDSet is a sorted set of ids stored in a JSON column.
type IDSet []uint

// Contains reports whether id is in the set.
func (s IDSet) Contains(id uint) bool {
	_, found := slices.BinarySearch(s, id)
	return found
}

// Add returns the set with id inserted. Adding an existing id is a no-op.
func (s IDSet) Add(id uint) IDSet {
	i, found := slices.BinarySearch(s, id)
	if found {
		return s
	}
	return slices.Insert(s, i, id)
}

// Remove returns the set without id.
func (s IDSet) Remove(id uint) IDSet {
	i, found := slices.BinarySearch(s, id)
	if !found {
		return s
	}
	return slices.Delete(s, i, i+1)
}

// NewIDSet builds a set from arbitrary ids.
func NewIDSet(ids ...uint) IDSet {
	s := IDSet{}
	for _, id := range ids {
		s = s.Add(id)
	}
	return s
}

func (s IDSet) Value() (driver.Value, error) {
	if s == nil {
		s = IDSet{}
	}
	b, err := json.Marshal([]uint(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column into the set.
func (s *IDSet) Scan(src interface{}) error {
	var ids []uint
	if err := scanJSON("IDSet", src, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

// StringSlice is a list of strings stored in a JSON column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	return scanJSON("StringSlice", src, (*[]string)(s))
}

// scanJSON accepts both []byte (postgres) and string (sqlite) column values.
func scanJSON(name string, src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("%s: expected []byte or string, got %T", name, src)
	}
}

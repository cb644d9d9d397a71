/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package document

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a read-only view over a schemaless record returned by the document store. Every accessor reports a
// *errors.FieldError carrying the full dotted path of the field when the field is missing or has the wrong shape.
type Document struct {
	fields map[string]interface{}
	path   string
}

// New wraps the fields of a record, e.g. a bson.M decoded from a mongo cursor
func New(fields map[string]interface{}) Document {
	return Document{fields: fields}
}

// FromRaw decodes a raw bson record
func FromRaw(raw bson.Raw) (Document, error) {
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return Document{}, err
	}
	return New(fields), nil
}

// Path returns the dotted path of the document within its record, empty for the record itself
func (d Document) Path() string {
	return d.path
}

// Fields returns the underlying fields
func (d Document) Fields() map[string]interface{} {
	return d.fields
}

func (d Document) fieldPath(key string) string {
	return joinPath(d.path, key)
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// lookup walks the dotted key through sub-documents and array indexes. It returns the path of the last field
// visited, which is the missing one when the lookup fails.
func (d Document) lookup(key string) (interface{}, string, bool) {
	var value interface{} = d.fields
	path := d.path
	for _, part := range strings.Split(key, ".") {
		path = joinPath(path, part)

		found := false
		if fields, ok := asFields(value); ok {
			value, found = fields[part]
		} else if values, ok := asArray(value); ok {
			if index, err := strconv.Atoi(part); err == nil && index >= 0 && index < len(values) {
				value, found = values[index], true
			}
		}

		if !found || value == nil {
			return nil, path, false
		}
	}

	return value, path, true
}

func (d Document) get(key string) (interface{}, error) {
	value, path, ok := d.lookup(key)
	if !ok {
		return nil, hErrors.NewFieldError(path, "missing")
	}
	return value, nil
}

// Value returns the raw value at key, for fields holding more than one representation
func (d Document) Value(key string) (interface{}, error) {
	return d.get(key)
}

// Has tells whether the field at the dotted key is present and not null
func (d Document) Has(key string) bool {
	_, _, ok := d.lookup(key)
	return ok
}

// Document returns the sub-document at key
func (d Document) Document(key string) (Document, error) {
	value, err := d.get(key)
	if err != nil {
		return Document{}, err
	}

	fields, ok := asFields(value)
	if !ok {
		return Document{}, d.typeError(key, "document", value)
	}
	return Document{fields: fields, path: d.fieldPath(key)}, nil
}

// Documents returns the array of sub-documents at key. An absent array is an empty result.
func (d Document) Documents(key string) ([]Document, error) {
	values, err := d.OptionalArray(key)
	if err != nil {
		return nil, err
	}

	documents := make([]Document, 0, len(values))
	for i, value := range values {
		fields, ok := asFields(value)
		if !ok {
			return nil, d.typeError(fmt.Sprintf("%s.%d", key, i), "document", value)
		}
		documents = append(documents, Document{fields: fields, path: d.fieldPath(fmt.Sprintf("%s.%d", key, i))})
	}
	return documents, nil
}

// Array returns the required array at key
func (d Document) Array(key string) ([]interface{}, error) {
	value, err := d.get(key)
	if err != nil {
		return nil, err
	}

	values, ok := asArray(value)
	if !ok {
		return nil, d.typeError(key, "array", value)
	}
	return values, nil
}

// OptionalArray returns the array at key, nil when the field is absent
func (d Document) OptionalArray(key string) ([]interface{}, error) {
	if !d.Has(key) {
		return nil, nil
	}
	return d.Array(key)
}

// Int64 returns the integer at key
func (d Document) Int64(key string) (int64, error) {
	value, err := d.get(key)
	if err != nil {
		return 0, err
	}

	number, ok := asInt64(value)
	if !ok {
		return 0, d.typeError(key, "integer", value)
	}
	return number, nil
}

// Uint64 returns the unsigned 64-bit integer at key. The store keeps unsigned values in signed 64-bit fields, so a
// negative value is reinterpreted bit for bit.
func (d Document) Uint64(key string) (uint64, error) {
	value, err := d.get(key)
	if err != nil {
		return 0, err
	}

	if number, ok := value.(uint64); ok {
		return number, nil
	}

	number, ok := asInt64(value)
	if !ok {
		return 0, d.typeError(key, "integer", value)
	}
	return uint64(number), nil
}

// Uint32 returns the unsigned 32-bit integer at key, reinterpreting a negative signed 32-bit value
func (d Document) Uint32(key string) (uint32, error) {
	number, err := d.unsigned(key, 32)
	return uint32(number), err
}

// Uint16 returns the unsigned 16-bit integer at key, reinterpreting a negative signed 16-bit value
func (d Document) Uint16(key string) (uint16, error) {
	number, err := d.unsigned(key, 16)
	return uint16(number), err
}

// Uint8 returns the unsigned byte at key, reinterpreting a negative signed byte
func (d Document) Uint8(key string) (uint8, error) {
	number, err := d.unsigned(key, 8)
	return uint8(number), err
}

// Int8 returns the signed byte at key. Values stored unsigned (128 to 255) are reinterpreted as negative.
func (d Document) Int8(key string) (int8, error) {
	number, err := d.unsigned(key, 8)
	return int8(uint8(number)), err
}

// Int16 returns the signed 16-bit integer at key. Values stored unsigned are reinterpreted as negative.
func (d Document) Int16(key string) (int16, error) {
	number, err := d.unsigned(key, 16)
	return int16(uint16(number)), err
}

func (d Document) unsigned(key string, bits uint) (uint64, error) {
	number, err := d.Int64(key)
	if err != nil {
		return 0, err
	}

	lowest := -(int64(1) << (bits - 1))
	highest := int64(1)<<bits - 1
	if number < lowest || number > highest {
		return 0, hErrors.NewFieldError(d.fieldPath(key), "value %d out of range for %d bits", number, bits)
	}
	return uint64(number) & (uint64(math.MaxUint64) >> (64 - bits)), nil
}

// Bool returns the boolean at key
func (d Document) Bool(key string) (bool, error) {
	value, err := d.get(key)
	if err != nil {
		return false, err
	}

	flag, ok := value.(bool)
	if !ok {
		return false, d.typeError(key, "boolean", value)
	}
	return flag, nil
}

// String returns the string at key
func (d Document) String(key string) (string, error) {
	value, err := d.get(key)
	if err != nil {
		return "", err
	}

	text, ok := value.(string)
	if !ok {
		return "", d.typeError(key, "string", value)
	}
	return text, nil
}

// Bytes returns the binary field at key. A hex string is accepted for records converted from json.
func (d Document) Bytes(key string) ([]byte, error) {
	value, err := d.get(key)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case primitive.Binary:
		return v.Data, nil
	case []byte:
		return v, nil
	case string:
		data, err := hex.DecodeString(v)
		if err != nil {
			return nil, hErrors.NewFieldError(d.fieldPath(key), "invalid hex string")
		}
		return data, nil
	default:
		return nil, d.typeError(key, "binary", value)
	}
}

// Hex returns the binary field at key as an upper case hex string
func (d Document) Hex(key string) (string, error) {
	data, err := d.Bytes(key)
	if err != nil {
		return "", err
	}
	return EncodeHex(data), nil
}

// OptionalHex returns the binary field at key as an upper case hex string, and false when the field is absent
func (d Document) OptionalHex(key string) (string, bool, error) {
	if !d.Has(key) {
		return "", false, nil
	}

	value, err := d.Hex(key)
	return value, err == nil, err
}

// HexArray returns the array of binary values at key as upper case hex strings. An absent array is empty.
func (d Document) HexArray(key string) ([]string, error) {
	values, err := d.OptionalArray(key)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(values))
	for i := range values {
		value, err := d.Hex(fmt.Sprintf("%s.%d", key, i))
		if err != nil {
			return nil, err
		}
		result = append(result, value)
	}
	return result, nil
}

// ObjectIdHex returns the object id at key as a hex string
func (d Document) ObjectIdHex(key string) (string, error) {
	value, err := d.get(key)
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case primitive.ObjectID:
		return strings.ToUpper(v.Hex()), nil
	case string:
		return strings.ToUpper(v), nil
	default:
		return "", d.typeError(key, "object id", value)
	}
}

// Field returns a FieldError for key, used by decoders validating a value they extracted
func (d Document) Field(key, format string, args ...interface{}) error {
	return hErrors.NewFieldError(d.fieldPath(key), format, args...)
}

func (d Document) typeError(key, expected string, value interface{}) error {
	return hErrors.NewFieldError(d.fieldPath(key), "expected %s, got %T", expected, value)
}

// EncodeHex returns the upper case hex form of data, the form hashes and keys are compared in
func EncodeHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

func asFields(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case bson.M:
		return v, true
	case map[string]interface{}:
		return v, true
	case bson.D:
		return v.Map(), true
	case Document:
		return v.fields, true
	default:
		return nil, false
	}
}

func asArray(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case bson.A:
		return v, true
	case []interface{}:
		return v, true
	case []bson.M:
		values := make([]interface{}, len(v))
		for i := range v {
			values[i] = v[i]
		}
		return values, true
	case []string:
		values := make([]interface{}, len(v))
		for i := range v {
			values[i] = v[i]
		}
		return values, true
	default:
		return nil, false
	}
}

func asInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	default:
		return 0, false
	}
}

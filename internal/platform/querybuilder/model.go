package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// modelColumns maps a struct type to the db column name and field index of
// each exported, db-tagged field.
type modelColumns struct {
	names  []string
	fields []int
}

var modelColumnCache sync.Map // reflect.Type -> *modelColumns

// InsertModels builds one multi-row insert from db-tagged structs of the
// same type. Untagged, unexported and `db:"-"` fields are skipped.
func InsertModels(table string, models ...any) (*InsertBuilder, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("insert models are required")
	}

	b := InsertInto(table)
	var rowType reflect.Type
	for i, model := range models {
		value, err := structValue(model)
		if err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
		if rowType == nil {
			rowType = value.Type()
		} else if value.Type() != rowType {
			return nil, fmt.Errorf("model %d is %s, expected %s", i, value.Type(), rowType)
		}

		cols := columnsOf(rowType)
		if len(cols.names) == 0 {
			return nil, fmt.Errorf("%s has no db columns", rowType)
		}
		if i == 0 {
			b.Columns(cols.names...)
		}
		row := make([]any, len(cols.fields))
		for j, idx := range cols.fields {
			row[j] = value.Field(idx).Interface()
		}
		b.Values(row...)
	}
	return b, nil
}

func structValue(model any) (reflect.Value, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("model must be a struct, got %s", value.Kind())
	}
	return value, nil
}

func columnsOf(typ reflect.Type) *modelColumns {
	if cached, ok := modelColumnCache.Load(typ); ok {
		return cached.(*modelColumns)
	}

	cols := &modelColumns{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols.names = append(cols.names, name)
		cols.fields = append(cols.fields, i)
	}

	actual, _ := modelColumnCache.LoadOrStore(typ, cols)
	return actual.(*modelColumns)
}

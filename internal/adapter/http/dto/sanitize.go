package dto

import (
	"reflect"
	"strings"
)

// SanitizeStruct trims surrounding whitespace from every exported string
// field of a struct pointer. Bodies arrive from copy-pasted frontend input,
// so stray whitespace around wallet names and addresses is common.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}

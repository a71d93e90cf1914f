package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/navcoord/config"
)

var bindingType = reflect.TypeFor[key.Binding]()

// ApplyOverrides rebinds the key.Binding fields of the struct km points to.
// Override names are the snake_case field names, so "next_tab" rebinds
// NextTab. Embedded structs are walked too. The help text lists the new
// keys and keeps the old description. Anything other than a non-nil struct
// pointer is left alone.
func ApplyOverrides(km interface{}, overrides config.KeybindingSectionConfig) {
	if len(overrides) == 0 {
		return
	}
	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return
	}
	rebind(v.Elem(), overrides)
}

func rebind(v reflect.Value, overrides config.KeybindingSectionConfig) {
	for i := range v.NumField() {
		field, sf := v.Field(i), v.Type().Field(i)
		switch {
		case !field.CanSet():
		case sf.Anonymous && field.Kind() == reflect.Struct:
			rebind(field, overrides)
		case sf.Type == bindingType:
			keys := overrides[camelToSnake(sf.Name)]
			if len(keys) == 0 {
				continue
			}
			desc := field.Interface().(key.Binding).Help().Desc
			field.Set(reflect.ValueOf(key.NewBinding(
				key.WithKeys(keys...),
				key.WithHelp(strings.Join(keys, "/"), desc),
			)))
		}
	}
}

// camelToSnake puts an underscore before every capital after the first:
// NextTab -> next_tab, HTTPServer -> h_t_t_p_server.
func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

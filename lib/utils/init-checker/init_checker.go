package initchecker

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// CheckInit паникует, если хотя бы одна из зависимостей owner не инициализирована
func CheckInit(owner string, deps map[string]any) {
	missing := Missing(deps)
	if len(missing) != 0 {
		panic(fmt.Sprintf("%s: не инициализированы зависимости: %s", owner, strings.Join(missing, ", ")))
	}
}

func Missing(deps map[string]any) []string {
	result := []string{}
	for name, value := range deps {
		if isNil(value) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

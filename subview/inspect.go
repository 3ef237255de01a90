package subview

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"
)

var (
	ErrNotAConversion = errors.New("provided function is not a recognizable conversion")
	ErrNotAFunction   = errors.New("provided conversion is not a function")
)

// Conversion describes a generated conversion entry point.
type Conversion struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	// Fallible is true for the (Target, error) shape.
	Fallible bool
}

// ParseConversion inspects the provided function and returns its
// description if it has one of the generated conversion shapes:
//
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, error)
func ParseConversion(fn any) (Conversion, error) {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func {
		return Conversion{}, ErrNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return Conversion{}, ErrNotAConversion
	}

	conv := Conversion{
		Src: fnType.In(0),
		Dst: fnType.Out(0),
	}

	if fnType.NumOut() == 2 {
		if !isError(fnType.Out(1)) {
			return Conversion{}, ErrNotAConversion
		}

		conv.Fallible = true
	}

	if fnPC := runtime.FuncForPC(fnVal.Pointer()); fnPC != nil {
		pkgPath, name := splitFuncName(fnPC.Name())

		conv.Name = name
		conv.PackageAlias = path.Base(pkgPath)
		if conv.PackageAlias == "." {
			conv.PackageAlias = ""
		}
	}

	return conv, nil
}

// splitFuncName splits a runtime function name into package path and bare
// name. The package path ends at the first dot after the last path
// separator; dots inside a module path ("github.com/...") never split.
func splitFuncName(full string) (pkgPath, name string) {
	sep := strings.LastIndex(full, "/") + 1
	if dot := strings.Index(full[sep:], "."); dot >= 0 {
		return full[:sep+dot], full[sep+dot+1:]
	}

	return "", full
}

func isError(t reflect.Type) bool {
	return t.Implements(reflect.TypeOf((*error)(nil)).Elem())
}

package subview_test

import (
	"fmt"
	"strconv"

	"subview-generator/subview"
)

func infallible(int) string          { panic("not implemented") }
func wrong(int) (string, error, int) { panic("not implemented") }
func noArgs() string                 { panic("not implemented") }

func ExampleParseConversion() {
	desc, err := subview.ParseConversion(infallible)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.Fallible)

	desc, err = subview.ParseConversion(strconv.Atoi)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.Fallible)

	_, err = subview.ParseConversion(wrong)
	fmt.Println(err)

	_, err = subview.ParseConversion(noArgs)
	fmt.Println(err)

	_, err = subview.ParseConversion(42)
	fmt.Println(err)

	// Output:
	// <nil> subview_test infallible int string false
	// <nil> strconv Atoi string int true
	// provided function is not a recognizable conversion
	// provided function is not a recognizable conversion
	// provided conversion is not a function
}

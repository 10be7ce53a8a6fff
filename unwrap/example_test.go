// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap_test

import (
	"errors"
	"fmt"
	"strconv"

	"go.astrophena.name/optthrow/unwrap"
)

func ExampleDo() {
	parse := func(s string) *int {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &n
	}

	a, b := parse("2"), parse("3")
	sum, err := unwrap.Do(func() int { return unwrap.Deref(a) + unwrap.Deref(b) })
	fmt.Println(sum, err)

	c := parse("three")
	_, err = unwrap.Do(func() int { return unwrap.Deref(a) + unwrap.Deref(c) })
	fmt.Println(errors.Is(err, unwrap.ErrAbsent))
	// Output:
	// 5 <nil>
	// true
}

func ExampleOK() {
	ages := map[string]int{"Albert": 27}

	age, ok := ages["Isaac"]
	if _, err := unwrap.OK(age, ok); err != nil {
		fmt.Println("Isaac:", err)
	}
	// Output:
	// Isaac: value is absent
}

// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap

import (
	"errors"
	"fmt"
	"testing"
	"testing/quick"
	"testing/synctest"

	"go.astrophena.name/optthrow/testutil"
)

func ptr[T any](v T) *T { return &v }

func TestAbsentError(t *testing.T) {
	wrapped := fmt.Errorf("reading age: %w", ErrAbsent)

	if !errors.Is(wrapped, ErrAbsent) {
		t.Fatalf("errors.Is(%v, ErrAbsent) = false", wrapped)
	}
	var ae AbsentError
	if !errors.As(wrapped, &ae) {
		t.Fatalf("errors.As(%v, *AbsentError) = false", wrapped)
	}
	if errors.Is(errors.New("value is absent"), ErrAbsent) {
		t.Fatal("unrelated error with the same text must not match ErrAbsent")
	}
	testutil.AssertEqual(t, ErrAbsent.Error(), "value is absent")
}

func TestOK(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		v, err := OK("Albert", true)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, v, "Albert")
	})

	t.Run("absent", func(t *testing.T) {
		v, err := OK(42, false)
		if !errors.Is(err, ErrAbsent) {
			t.Fatalf("want ErrAbsent, got %v", err)
		}
		testutil.AssertEqual(t, v, 0)
	})

	t.Run("map lookup", func(t *testing.T) {
		m := map[string]int{"age": 27}
		v, ok := m["age"]
		age, err := OK(v, ok)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, age, 27)

		v, ok = m["height"]
		_, err = OK(v, ok)
		if !errors.Is(err, ErrAbsent) {
			t.Fatalf("want ErrAbsent, got %v", err)
		}
	})

	t.Run("present nil value", func(t *testing.T) {
		var s []int
		v, err := OK(s, true)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, v, s)
	})
}

func TestPtr(t *testing.T) {
	v, err := Ptr(ptr(3.5))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, v, 3.5)

	_, err = Ptr[float64](nil)
	if !errors.Is(err, ErrAbsent) {
		t.Fatalf("want ErrAbsent, got %v", err)
	}
}

func TestOKProperties(t *testing.T) {
	passthrough := func(v int64) bool {
		got, err := OK(v, true)
		return err == nil && got == v
	}
	if err := quick.Check(passthrough, nil); err != nil {
		t.Fatalf("present values must pass through: %v", err)
	}

	alwaysAbsent := func(v string) bool {
		_, err := OK(v, false)
		return err == ErrAbsent
	}
	if err := quick.Check(alwaysAbsent, nil); err != nil {
		t.Fatalf("absent values must fail with ErrAbsent: %v", err)
	}
}

func TestDoSum(t *testing.T) {
	cases := map[string]struct {
		a, b    *int
		want    int
		wantErr error
	}{
		"both present":  {a: ptr(2), b: ptr(3), want: 5},
		"right absent":  {a: ptr(2), b: nil, wantErr: ErrAbsent},
		"left absent":   {a: nil, b: ptr(3), wantErr: ErrAbsent},
		"both absent":   {a: nil, b: nil, wantErr: ErrAbsent},
		"present zeros": {a: ptr(0), b: ptr(0), want: 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			sum, err := Do(func() int { return Deref(tc.a) + Deref(tc.b) })
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want error %v, got %v", tc.wantErr, err)
			}
			testutil.AssertEqual(t, sum, tc.want)
		})
	}
}

func TestDoShortCircuits(t *testing.T) {
	var evaluated []string
	lookup := func(name string, ok bool) int {
		evaluated = append(evaluated, name)
		return Get(1, ok)
	}

	_, err := Do(func() int {
		return lookup("a", true) + lookup("b", false) + lookup("c", true)
	})
	if !errors.Is(err, ErrAbsent) {
		t.Fatalf("want ErrAbsent, got %v", err)
	}
	testutil.AssertEqual(t, evaluated, []string{"a", "b"})
}

func TestDoCompositionLaw(t *testing.T) {
	law := func(a, b int32, aOK, bOK bool) bool {
		applied := false
		got, err := Do(func() int64 {
			x, y := Get(a, aOK), Get(b, bOK)
			applied = true
			return int64(x) + int64(y)
		})
		if aOK && bOK {
			return err == nil && applied && got == int64(a)+int64(b)
		}
		return err == ErrAbsent && !applied && got == 0
	}
	if err := quick.Check(law, nil); err != nil {
		t.Fatal(err)
	}
}

func TestDoIndependentFailures(t *testing.T) {
	for range 2 {
		_, err := Do(func() string { return Deref[string](nil) })
		if !errors.Is(err, ErrAbsent) {
			t.Fatalf("want ErrAbsent, got %v", err)
		}
	}
	v, err := Do(func() string { return Deref(ptr("ok")) })
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, v, "ok")
}

func TestDoOtherPanics(t *testing.T) {
	defer func() {
		r := recover()
		testutil.AssertEqual(t, r, "boom")
	}()
	Do(func() int { panic("boom") })
	t.Fatal("Do must not swallow unrelated panics")
}

func TestOutsideDo(t *testing.T) {
	cases := map[string]func(){
		"get":   func() { Get(0, false) },
		"deref": func() { Deref[string](nil) },
		"abort": Abort,
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok {
					t.Fatal("panic value must be an error")
				}
				testutil.AssertErrorIs(t, err, ErrAbsent)
				testutil.AssertEqual(t, err.Error(), "unwrap: absent value outside unwrap.Do")
			}()
			f()
		})
	}
}

func TestDoConcurrent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		results := make([]error, 100)
		for i := range results {
			go func() {
				_, results[i] = Do(func() int { return Get(i, i%2 == 0) })
			}()
		}
		synctest.Wait()

		for i, err := range results {
			if i%2 == 0 {
				testutil.AssertEqual(t, err, nil)
			} else if !errors.Is(err, ErrAbsent) {
				t.Fatalf("goroutine %d: want ErrAbsent, got %v", i, err)
			}
		}
	})
}

func TestValue(t *testing.T) {
	t.Run("with nil error", func(t *testing.T) {
		result := Value("success", nil)
		testutil.AssertEqual(t, result, "success")
	})

	t.Run("with non-nil error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("The code did not panic")
			}
		}()
		Value("failure", errors.New("something went wrong"))
	})

	t.Run("with absent optional", func(t *testing.T) {
		defer func() {
			testutil.AssertEqual(t, recover(), ErrAbsent)
		}()
		Value(OK(0, false))
	})
}

func TestNoError(t *testing.T) {
	t.Run("with nil error", func(t *testing.T) {
		// Should not panic.
		NoError(nil)
	})

	t.Run("with non-nil error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("The code did not panic")
			}
		}()
		NoError(errors.New("something went wrong"))
	})
}

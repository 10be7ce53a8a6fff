// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package person assembles a Person record from a document.
package person

import (
	"fmt"

	"go.astrophena.name/optthrow/internal/jsonval"
	"go.astrophena.name/optthrow/unwrap"
)

// Person is a record assembled from a document.
type Person struct {
	FirstName string
	LastName  string
	Age       int
}

func (p Person) String() string {
	return fmt.Sprintf("%s %s (%d)", p.FirstName, p.LastName, p.Age)
}

// FromDocument reads the firstName, lastName and age fields of doc.
//
// If any field is missing or has the wrong kind, it returns an error wrapping
// [unwrap.ErrAbsent] and no Person.
func FromDocument(doc jsonval.Value) (Person, error) {
	p, err := unwrap.Do(func() Person {
		return Person{
			FirstName: doc.Field("firstName").Str().Must(),
			LastName:  doc.Field("lastName").Str().Must(),
			Age:       doc.Field("age").Int().Must(),
		}
	})
	if err != nil {
		return Person{}, fmt.Errorf("person: %w", err)
	}
	return p, nil
}

// Document returns p as a document. It is the inverse of [FromDocument].
func (p Person) Document() jsonval.Value {
	return jsonval.NewObject(map[string]jsonval.Value{
		"firstName": jsonval.NewString(p.FirstName),
		"lastName":  jsonval.NewString(p.LastName),
		"age":       jsonval.NewNumber(float64(p.Age)),
	})
}

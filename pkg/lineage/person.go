package lineage

import "github.com/google/uuid"

// Traits holds the compared attributes of a person. Every field must stay
// comparable with ==.
type Traits struct {
	Name   string
	Age    int
	Height int
	Weight int
}

// Person is a record in a parent-linked chain. ID identifies the record and
// never takes part in equality.
type Person struct {
	ID uuid.UUID
	Traits
	Parent *Person
}

// NewPerson returns a person with a freshly generated ID.
func NewPerson(name string, age, height, weight int, parent *Person) *Person {
	return &Person{
		ID: uuid.New(),
		Traits: Traits{
			Name:   name,
			Age:    age,
			Height: height,
			Weight: weight,
		},
		Parent: parent,
	}
}

// Depth returns the number of records in the chain starting at p.
func (p *Person) Depth() int {
	n := 0
	for ; p != nil; p = p.Parent {
		n++
	}
	return n
}

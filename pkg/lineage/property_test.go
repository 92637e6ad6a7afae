package lineage_test

import (
	"testing"

	"github.com/google/uuid"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/docnum/pkg/lineage"
)

func genChain(t *rapid.T) *lineage.Person {
	n := rapid.IntRange(1, 6).Draw(t, "depth")
	var p *lineage.Person
	for i := 0; i < n; i++ {
		p = lineage.NewPerson(
			rapid.StringMatching(`[A-Z][a-z]{0,8}`).Draw(t, "name"),
			rapid.IntRange(0, 120).Draw(t, "age"),
			rapid.IntRange(50, 220).Draw(t, "height"),
			rapid.IntRange(3, 200).Draw(t, "weight"),
			p,
		)
	}
	return p
}

func cloneChain(p *lineage.Person) *lineage.Person {
	if p == nil {
		return nil
	}
	return &lineage.Person{ID: uuid.New(), Traits: p.Traits, Parent: cloneChain(p.Parent)}
}

func nth(p *lineage.Person, i int) *lineage.Person {
	for ; i > 0; i-- {
		p = p.Parent
	}
	return p
}

func TestProperty_Reflexive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genChain(t)
		if !lineage.Equal(p, p) || !lineage.Equal(p, cloneChain(p)) {
			t.Fatal("chain not equal to itself")
		}
	})
}

func TestProperty_IDNeverMatters(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genChain(t)
		b := cloneChain(a)
		nth(b, rapid.IntRange(0, b.Depth()-1).Draw(t, "at")).ID = uuid.New()

		if !lineage.Equal(a, b) {
			t.Fatal("changing an ID changed equality")
		}
		if !lineage.Equivalent(a, b) {
			t.Fatal("changing an ID changed equivalence")
		}
	})
}

func TestProperty_TraitChangeBreaksEquality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genChain(t)
		b := cloneChain(a)
		target := nth(b, rapid.IntRange(0, b.Depth()-1).Draw(t, "at"))

		switch rapid.IntRange(0, 3).Draw(t, "field") {
		case 0:
			target.Name += "x"
		case 1:
			target.Age++
		case 2:
			target.Height++
		case 3:
			target.Weight++
		}

		if lineage.Equal(a, b) {
			t.Fatal("changed trait not detected by Equal")
		}
		if lineage.Equivalent(a, b) {
			t.Fatal("changed trait not detected by Equivalent")
		}
	})
}

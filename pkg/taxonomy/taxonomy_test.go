package taxonomy

import "testing"

func TestTableIsValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("compiled-in taxonomy invalid: %v", err)
	}
}

func TestClosedTypeSet(t *testing.T) {
	all := Types()
	if len(all) != 22 {
		t.Errorf("expected 22 declared types, got %d", len(all))
	}

	seen := make(map[Type]bool)
	for _, typ := range all {
		if seen[typ] {
			t.Errorf("type %q listed twice", typ)
		}
		seen[typ] = true
		if !Valid(typ) {
			t.Errorf("listed type %q has no entry", typ)
		}
	}

	if Valid(Type("bogus_plant")) {
		t.Error("expected unknown type to be invalid")
	}
}

func TestEveryTypeHasExactlyOneFamily(t *testing.T) {
	owner := make(map[Type]Family)
	for _, f := range Families() {
		for _, typ := range FamilyTypes(f) {
			if prev, ok := owner[typ]; ok {
				t.Errorf("type %q in families %q and %q", typ, prev, f)
			}
			owner[typ] = f
		}
	}
	for _, typ := range Types() {
		if _, ok := owner[typ]; !ok {
			t.Errorf("type %q belongs to no family", typ)
		}
	}
}

func TestVariantDeclarations(t *testing.T) {
	mushroom, _ := Lookup(TypeMushroom)
	if len(mushroom.Variants) != 2 {
		t.Fatalf("expected 2 mushroom variants, got %d", len(mushroom.Variants))
	}
	var giant *VariantWeight
	for i := range mushroom.Variants {
		if mushroom.Variants[i].Variant == VariantGiant {
			giant = &mushroom.Variants[i]
		}
	}
	if giant == nil {
		t.Fatal("mushroom declares no giant variant")
	}
	if giant.Weight != 0.2 {
		t.Errorf("giant weight = %v, want 0.2", giant.Weight)
	}
	if giant.ScaleFactor != 1.5 {
		t.Errorf("giant scale factor = %v, want 1.5", giant.ScaleFactor)
	}

	grass, _ := Lookup(TypeGrass)
	if len(grass.Variants) != 0 {
		t.Error("grass must not declare variants")
	}
}

func TestSkyTypes(t *testing.T) {
	for _, typ := range Types() {
		e, _ := Lookup(typ)
		if !e.Sky {
			continue
		}
		if e.Altitude.Min >= e.Altitude.Max {
			t.Errorf("sky type %q altitude range [%v, %v] invalid", typ, e.Altitude.Min, e.Altitude.Max)
		}
		if e.SizeRange.Min <= 0 {
			t.Errorf("sky type %q size range starts at %v", typ, e.SizeRange.Min)
		}
	}

	cloud, _ := Lookup(TypeCloud)
	if !cloud.Sky {
		t.Fatal("cloud must be sky-anchored")
	}
	if cloud.Altitude.Min != 40 || cloud.Altitude.Max != 80 {
		t.Errorf("cloud altitude range [%v, %v], want [40, 80]", cloud.Altitude.Min, cloud.Altitude.Max)
	}
}

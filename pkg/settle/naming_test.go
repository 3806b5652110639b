package settle

import (
	"strings"
	"testing"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/rng"
)

func TestSynthesizeNameJoinsTables(t *testing.T) {
	name := synthesizeName(rng.New(1), catalog.SizeVillage)
	if name == "" {
		t.Fatal("empty name")
	}
	prefixOK := false
	for _, p := range namePrefixes {
		if strings.HasPrefix(name, p) {
			prefixOK = true
			break
		}
	}
	if !prefixOK {
		t.Errorf("name %q does not start with a known prefix", name)
	}
	suffixOK := false
	for _, s := range villageSuffixes {
		if strings.HasSuffix(name, s) {
			suffixOK = true
			break
		}
	}
	if !suffixOK {
		t.Errorf("name %q does not end with a village suffix", name)
	}
}

func TestSynthesizeNameDeterministic(t *testing.T) {
	a := synthesizeName(rng.New(8), catalog.SizeCity)
	b := synthesizeName(rng.New(8), catalog.SizeCity)
	if a != b {
		t.Errorf("same seed named %q and %q", a, b)
	}
}

func TestSynthesizeNameConsumesTwoDraws(t *testing.T) {
	src := rng.New(4)
	synthesizeName(src, catalog.SizeTown)

	ref := rng.New(4)
	ref.Next()
	ref.Next()
	if src.Next() != ref.Next() {
		t.Error("naming must consume exactly two draws")
	}
}

func TestSuffixTablesPerSize(t *testing.T) {
	for _, size := range catalog.SizeClasses {
		if len(suffixesFor(size)) == 0 {
			t.Errorf("no suffixes for %s", size)
		}
	}
	if suffixesFor(catalog.SizeHamlet)[0] == suffixesFor(catalog.SizeCity)[0] {
		t.Error("hamlet and city should draw from different suffix tables")
	}
}

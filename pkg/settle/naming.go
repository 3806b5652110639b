package settle

import (
	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/rng"
)

// namePrefixes is shared by every size class.
var namePrefixes = []string{
	"Ash", "Alder", "Bar", "Bex", "Birch", "Black", "Bran", "Bright",
	"Brock", "Cald", "Carn", "Clay", "Cold", "Crag", "Dun", "East",
	"Elm", "Fair", "Fen", "Glen", "Gold", "Grey", "Har", "Haw",
	"Hazel", "High", "Holly", "Kings", "Lang", "Lark", "Lin", "Long",
	"Marsh", "Mere", "Mill", "Moss", "North", "Oak", "Oster", "Pen",
	"Raven", "Red", "Rush", "Salt", "Shep", "Silver", "Stan", "Stone",
	"Summer", "Swan", "Thorn", "Wen", "West", "Whit", "Willow", "Win",
	"Wolf", "Wood", "Wyn",
}

var (
	hamletSuffixes  = []string{"thorpe", "cot", "stead", "wick", "croft", "hollow", "moor", "lea"}
	villageSuffixes = []string{"ton", "ham", "field", "dale", "brook", "worth", "by", "green"}
	townSuffixes    = []string{"ford", "bridge", "burgh", "gate", "mouth", "borough", "wich", "stow"}
	citySuffixes    = []string{"chester", "minster", "burg", "haven", "port", "holm", "caster", "mount"}
)

func suffixesFor(size catalog.SizeClass) []string {
	switch size {
	case catalog.SizeHamlet:
		return hamletSuffixes
	case catalog.SizeTown:
		return townSuffixes
	case catalog.SizeCity:
		return citySuffixes
	}
	return villageSuffixes
}

// synthesizeName joins one prefix draw with one size-suffix draw.
// Exactly two draws, no retries, no uniqueness guarantee; duplicate
// names across settlements are acceptable.
func synthesizeName(src *rng.Source, size catalog.SizeClass) string {
	return rng.Pick(src, namePrefixes) + rng.Pick(src, suffixesFor(size))
}

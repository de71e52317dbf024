package imaging

// NamedColor is a CSS color keyword and its sRGB value.
type NamedColor struct {
	Name string
	RGB  RGBColor
}

// Palette is the set of names NearestName chooses from. It covers the CSS
// basic keywords plus the extended names people commonly say out loud.
var Palette = []NamedColor{
	{"black", RGBColor{0, 0, 0}},
	{"white", RGBColor{255, 255, 255}},
	{"gray", RGBColor{128, 128, 128}},
	{"silver", RGBColor{192, 192, 192}},
	{"dimgray", RGBColor{105, 105, 105}},
	{"lightgray", RGBColor{211, 211, 211}},
	{"red", RGBColor{255, 0, 0}},
	{"maroon", RGBColor{128, 0, 0}},
	{"darkred", RGBColor{139, 0, 0}},
	{"crimson", RGBColor{220, 20, 60}},
	{"salmon", RGBColor{250, 128, 114}},
	{"coral", RGBColor{255, 127, 80}},
	{"tomato", RGBColor{255, 99, 71}},
	{"orange", RGBColor{255, 165, 0}},
	{"darkorange", RGBColor{255, 140, 0}},
	{"gold", RGBColor{255, 215, 0}},
	{"yellow", RGBColor{255, 255, 0}},
	{"khaki", RGBColor{240, 230, 140}},
	{"beige", RGBColor{245, 245, 220}},
	{"olive", RGBColor{128, 128, 0}},
	{"lime", RGBColor{0, 255, 0}},
	{"green", RGBColor{0, 128, 0}},
	{"darkgreen", RGBColor{0, 100, 0}},
	{"forestgreen", RGBColor{34, 139, 34}},
	{"seagreen", RGBColor{46, 139, 87}},
	{"lightgreen", RGBColor{144, 238, 144}},
	{"teal", RGBColor{0, 128, 128}},
	{"aqua", RGBColor{0, 255, 255}},
	{"turquoise", RGBColor{64, 224, 208}},
	{"skyblue", RGBColor{135, 206, 235}},
	{"steelblue", RGBColor{70, 130, 180}},
	{"blue", RGBColor{0, 0, 255}},
	{"navy", RGBColor{0, 0, 128}},
	{"royalblue", RGBColor{65, 105, 225}},
	{"indigo", RGBColor{75, 0, 130}},
	{"purple", RGBColor{128, 0, 128}},
	{"violet", RGBColor{238, 130, 238}},
	{"fuchsia", RGBColor{255, 0, 255}},
	{"orchid", RGBColor{218, 112, 214}},
	{"pink", RGBColor{255, 192, 203}},
	{"hotpink", RGBColor{255, 105, 180}},
	{"brown", RGBColor{165, 42, 42}},
	{"chocolate", RGBColor{210, 105, 30}},
	{"sienna", RGBColor{160, 82, 45}},
	{"tan", RGBColor{210, 180, 140}},
}

// NearestName returns the Palette entry closest to c in CIE Lab space.
//
// Lab distance tracks perceived difference better than Euclidean RGB, so a
// dark olive reads as "olive" rather than "gray". Ties resolve to the entry
// listed first.
func NearestName(c RGBColor) string {
	target := c.colorful()
	best := ""
	bestDist := 0.0
	for i, nc := range Palette {
		d := target.DistanceLab(nc.RGB.colorful())
		if i == 0 || d < bestDist {
			best, bestDist = nc.Name, d
		}
	}
	return best
}

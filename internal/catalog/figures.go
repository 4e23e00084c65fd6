package catalog

// Figure is one constellation stick figure. Lines name pairs of stars
// from the bright-star table; Segments resolves them to positions.
type Figure struct {
	Name  string
	Lines [][2]string
}

// Segment is one resolved constellation line.
type Segment struct {
	A, B Star
}

// Figures returns the constellation figure set.
func Figures() []Figure {
	return constellationFigures
}

// byName indexes the bright-star table for segment resolution.
var byName = func() map[string]Star {
	m := make(map[string]Star, len(brightStars))
	for _, s := range brightStars {
		m[s.Name] = s
	}
	return m
}()

// Find returns the cataloged star with the given name.
func Find(name string) (Star, bool) {
	s, ok := byName[name]
	return s, ok
}

// Segments resolves the figure's lines against the star table.
// Lines naming unknown stars are dropped rather than erroring: the
// figure set and star table evolve independently.
func (f Figure) Segments() []Segment {
	segs := make([]Segment, 0, len(f.Lines))
	for _, ln := range f.Lines {
		a, okA := byName[ln[0]]
		b, okB := byName[ln[1]]
		if !okA || !okB {
			continue
		}
		segs = append(segs, Segment{A: a, B: b})
	}
	return segs
}

var constellationFigures = []Figure{
	{
		Name: "Orion",
		Lines: [][2]string{
			{"Betelgeuse", "Bellatrix"},
			{"Bellatrix", "Mintaka"},
			{"Mintaka", "Alnilam"},
			{"Alnilam", "Alnitak"},
			{"Alnitak", "Betelgeuse"},
			{"Alnitak", "Saiph"},
			{"Saiph", "Rigel"},
			{"Rigel", "Mintaka"},
		},
	},
	{
		Name: "Ursa Major",
		Lines: [][2]string{
			{"Dubhe", "Merak"},
			{"Merak", "Phecda"},
			{"Phecda", "Megrez"},
			{"Megrez", "Dubhe"},
			{"Megrez", "Alioth"},
			{"Alioth", "Mizar"},
			{"Mizar", "Alkaid"},
		},
	},
	{
		Name: "Ursa Minor",
		Lines: [][2]string{
			{"Polaris", "Yildun"},
			{"Yildun", "Kochab"},
			{"Kochab", "Pherkad"},
		},
	},
	{
		Name: "Cassiopeia",
		Lines: [][2]string{
			{"Caph", "Schedar"},
			{"Schedar", "Navi"},
			{"Navi", "Ruchbah"},
			{"Ruchbah", "Segin"},
		},
	},
	{
		Name: "Cygnus",
		Lines: [][2]string{
			{"Deneb", "Sadr"},
			{"Sadr", "Albireo"},
			{"Sadr", "Aljanah"},
			{"Sadr", "Fawaris"},
		},
	},
	{
		Name: "Lyra",
		Lines: [][2]string{
			{"Vega", "Sheliak"},
			{"Sheliak", "Sulafat"},
			{"Sulafat", "Vega"},
		},
	},
	{
		Name: "Aquila",
		Lines: [][2]string{
			{"Tarazed", "Altair"},
			{"Altair", "Alshain"},
		},
	},
	{
		Name: "Bootes",
		Lines: [][2]string{
			{"Arcturus", "Muphrid"},
			{"Arcturus", "Izar"},
			{"Izar", "Seginus"},
		},
	},
	{
		Name: "Leo",
		Lines: [][2]string{
			{"Regulus", "Algieba"},
			{"Algieba", "Adhafera"},
			{"Adhafera", "Rasalas"},
			{"Algieba", "Zosma"},
			{"Zosma", "Denebola"},
			{"Denebola", "Chertan"},
			{"Chertan", "Regulus"},
		},
	},
	{
		Name: "Gemini",
		Lines: [][2]string{
			{"Castor", "Pollux"},
			{"Pollux", "Wasat"},
			{"Wasat", "Alhena"},
			{"Wasat", "Mebsuta"},
			{"Mebsuta", "Tejat"},
			{"Tejat", "Propus"},
		},
	},
	{
		Name: "Taurus",
		Lines: [][2]string{
			{"Aldebaran", "Elnath"},
			{"Aldebaran", "Alcyone"},
		},
	},
	{
		Name: "Auriga",
		Lines: [][2]string{
			{"Capella", "Menkalinan"},
			{"Menkalinan", "Elnath"},
			{"Elnath", "Hassaleh"},
			{"Hassaleh", "Capella"},
		},
	},
	{
		Name: "Canis Major",
		Lines: [][2]string{
			{"Sirius", "Mirzam"},
			{"Sirius", "Adhara"},
			{"Adhara", "Wezen"},
			{"Wezen", "Aludra"},
		},
	},
	{
		Name: "Scorpius",
		Lines: [][2]string{
			{"Acrab", "Dschubba"},
			{"Dschubba", "Antares"},
			{"Antares", "Larawag"},
			{"Larawag", "Sargas"},
			{"Sargas", "Shaula"},
		},
	},
	{
		Name: "Crux",
		Lines: [][2]string{
			{"Acrux", "Gacrux"},
			{"Mimosa", "Imai"},
		},
	},
	{
		Name: "Pegasus",
		Lines: [][2]string{
			{"Markab", "Scheat"},
			{"Scheat", "Alpheratz"},
			{"Alpheratz", "Algenib"},
			{"Algenib", "Markab"},
			{"Markab", "Enif"},
		},
	},
	{
		Name: "Andromeda",
		Lines: [][2]string{
			{"Alpheratz", "Mirach"},
			{"Mirach", "Almach"},
		},
	},
	{
		Name: "Perseus",
		Lines: [][2]string{
			{"Mirfak", "Algol"},
		},
	},
	{
		Name: "Cepheus",
		Lines: [][2]string{
			{"Alderamin", "Alfirk"},
			{"Alfirk", "Errai"},
			{"Errai", "Alderamin"},
		},
	},
	{
		Name: "Virgo",
		Lines: [][2]string{
			{"Spica", "Porrima"},
			{"Porrima", "Zavijava"},
			{"Porrima", "Vindemiatrix"},
			{"Spica", "Heze"},
			{"Heze", "Auva"},
			{"Auva", "Vindemiatrix"},
		},
	},
	{
		Name: "Corona Borealis",
		Lines: [][2]string{
			{"Alphecca", "Nusakan"},
		},
	},
}

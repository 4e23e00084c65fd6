// Package catalog holds the static star and constellation data the
// planisphere draws. Positions are J2000, right ascension in hours and
// declination in degrees, the units the source tables use; conversion
// to radians happens once, in the chart builder.
package catalog

// Star is one cataloged star.
type Star struct {
	Name     string  // IAU name
	RAHours  float64 // right ascension in hours (0-24)
	DecDeg   float64 // declination in degrees (-90 to +90)
	Mag      float64 // apparent visual magnitude, lower is brighter
	Spectral string  // spectral-type letter (O B A F G K M)
}

// Stars returns the bright-star table. The slice is shared; callers
// must not modify it.
func Stars() []Star {
	return brightStars
}

// brightStars is drawn from the Yale Bright Star Catalog and IAU star
// names, ordered roughly brightest first.
var brightStars = []Star{
	{"Sirius", 6.7525, -16.716, -1.46, "A"},
	{"Canopus", 6.3992, -52.696, -0.74, "F"},
	{"Arcturus", 14.2610, 19.182, -0.05, "K"},
	{"Vega", 18.6157, 38.784, 0.03, "A"},
	{"Capella", 5.2781, 45.998, 0.08, "G"},
	{"Rigel", 5.2423, -8.202, 0.13, "B"},
	{"Procyon", 7.6551, 5.225, 0.34, "F"},
	{"Achernar", 1.6286, -57.237, 0.46, "B"},
	{"Betelgeuse", 5.9195, 7.407, 0.50, "M"},
	{"Hadar", 14.0637, -60.373, 0.61, "B"},
	{"Altair", 19.8464, 8.868, 0.76, "A"},
	{"Acrux", 12.4433, -63.099, 0.76, "B"},
	{"Aldebaran", 4.5987, 16.509, 0.85, "K"},
	{"Antares", 16.4901, -26.432, 0.96, "M"},
	{"Spica", 13.4199, -11.161, 0.97, "B"},
	{"Pollux", 7.7553, 28.026, 1.14, "K"},
	{"Fomalhaut", 22.9609, -29.622, 1.16, "A"},
	{"Deneb", 20.6905, 45.280, 1.25, "A"},
	{"Mimosa", 12.7953, -59.689, 1.25, "B"},
	{"Regulus", 10.1395, 11.967, 1.35, "B"},
	{"Adhara", 6.9771, -28.972, 1.50, "B"},
	{"Castor", 7.5767, 31.889, 1.58, "A"},
	{"Gacrux", 12.5194, -57.113, 1.63, "M"},
	{"Shaula", 17.5601, -37.104, 1.63, "B"},
	{"Bellatrix", 5.4189, 6.350, 1.64, "B"},
	{"Elnath", 5.4382, 28.608, 1.65, "B"},
	{"Miaplacidus", 9.2200, -69.717, 1.68, "A"},
	{"Alnilam", 5.6035, -1.202, 1.69, "B"},
	{"Alnair", 22.1372, -46.961, 1.74, "B"},
	{"Alnitak", 5.6793, -1.943, 1.77, "O"},
	{"Alioth", 12.9005, 55.960, 1.77, "A"},
	{"Dubhe", 11.0621, 61.751, 1.79, "K"},
	{"Mirfak", 3.4054, 49.861, 1.79, "F"},
	{"Wezen", 7.1399, -26.393, 1.84, "F"},
	{"Sargas", 17.6220, -42.998, 1.87, "F"},
	{"Kaus Australis", 18.4029, -34.384, 1.85, "B"},
	{"Avior", 8.3753, -59.509, 1.86, "K"},
	{"Alkaid", 13.7923, 49.313, 1.86, "B"},
	{"Menkalinan", 5.9921, 44.948, 1.90, "A"},
	{"Atria", 16.8111, -69.028, 1.92, "K"},
	{"Alhena", 6.6285, 16.399, 1.93, "A"},
	{"Peacock", 20.4275, -56.735, 1.94, "B"},
	{"Alsephina", 8.7451, -54.709, 1.96, "A"},
	{"Mirzam", 6.3783, -17.956, 1.98, "B"},
	{"Polaris", 2.5303, 89.264, 2.02, "F"},
	{"Alphard", 9.4598, -8.659, 2.00, "K"},
	{"Hamal", 2.1195, 23.463, 2.00, "K"},
	{"Algieba", 9.7642, 19.842, 2.08, "K"},
	{"Diphda", 0.7265, -17.987, 2.02, "K"},
	{"Nunki", 18.9211, -26.297, 2.02, "B"},
	{"Mizar", 13.3987, 54.925, 2.04, "A"},
	{"Alpheratz", 0.1398, 29.091, 2.06, "B"},
	{"Saiph", 5.7959, -9.670, 2.09, "B"},
	{"Mirach", 1.1622, 35.621, 2.05, "M"},
	{"Kochab", 14.8451, 74.156, 2.08, "K"},
	{"Rasalhague", 17.5823, 12.560, 2.08, "A"},
	{"Algol", 3.1361, 40.957, 2.12, "B"},
	{"Denebola", 11.8177, 14.572, 2.13, "A"},
	{"Muhlifain", 12.6919, -48.960, 2.17, "A"},
	{"Naos", 8.0597, -40.003, 2.25, "O"},
	{"Aspidiske", 9.2849, -59.275, 2.25, "A"},
	{"Suhail", 9.1333, -43.433, 2.21, "K"},
	{"Alphecca", 15.5781, 26.715, 2.23, "A"},
	{"Mintaka", 5.5335, -0.299, 2.23, "O"},
	{"Sadr", 20.3705, 40.257, 2.23, "F"},
	{"Eltanin", 17.9435, 51.489, 2.23, "K"},
	{"Schedar", 0.6751, 56.537, 2.23, "K"},
	{"Caph", 0.1530, 59.150, 2.27, "F"},
	{"Dschubba", 16.0055, -22.622, 2.32, "B"},
	{"Larawag", 16.9770, -34.293, 2.29, "K"},
	{"Merak", 11.0307, 56.382, 2.37, "A"},
	{"Izar", 14.7498, 27.074, 2.37, "K"},
	{"Enif", 21.7364, 9.875, 2.39, "K"},
	{"Ankaa", 0.4381, -42.306, 2.38, "K"},
	{"Phecda", 11.8972, 53.695, 2.44, "A"},
	{"Sabik", 17.1730, -15.725, 2.43, "A"},
	{"Scheat", 23.0629, 28.083, 2.42, "M"},
	{"Alderamin", 21.3097, 62.586, 2.51, "A"},
	{"Aludra", 7.4016, -29.303, 2.45, "B"},
	{"Markeb", 9.3685, -55.011, 2.47, "B"},
	{"Girtab", 17.7081, -39.030, 2.41, "B"},
	{"Navi", 0.9451, 60.717, 2.47, "B"},
	{"Markab", 23.0793, 15.205, 2.49, "B"},
	{"Aljanah", 20.7702, 33.970, 2.48, "K"},
	{"Acrab", 16.0906, -19.805, 2.62, "B"},
	{"Aldhanab", 21.3311, -16.127, 3.00, "B"},
	{"Gienah", 12.2635, -17.542, 2.59, "B"},
	{"Zubeneschamali", 15.2835, -9.383, 2.61, "B"},
	{"Unukalhai", 15.7378, 6.426, 2.65, "K"},
	{"Sheratan", 1.9107, 20.808, 2.64, "A"},
	{"Phact", 5.6608, -34.074, 2.64, "B"},
	{"Menkent", 14.1114, -36.370, 2.06, "K"},
	{"Zosma", 11.2351, 20.524, 2.56, "A"},
	{"Arneb", 5.5455, -17.822, 2.58, "F"},
	{"Gomeisa", 7.4525, 8.289, 2.90, "B"},
	{"Deneb Kaitos", 0.7265, -17.987, 2.04, "K"},
	{"Thuban", 14.0731, 64.376, 3.65, "A"},
	{"Rastaban", 17.5072, 52.301, 2.79, "G"},
	{"Cor Caroli", 12.9338, 38.318, 2.81, "A"},
	{"Vindemiatrix", 13.0363, 10.959, 2.83, "G"},
	{"Algorab", 12.4977, -16.515, 2.95, "B"},
	{"Zubenelgenubi", 14.8480, -16.042, 2.75, "A"},
	{"Porrima", 12.6943, -1.449, 2.74, "F"},
	{"Albireo", 19.5120, 27.960, 3.18, "K"},
	{"Sadalmelik", 22.0964, -0.320, 2.96, "G"},
	{"Sadalsuud", 21.5260, -5.571, 2.91, "G"},
	{"Yed Prior", 16.2391, -3.694, 2.75, "M"},
	{"Alcyone", 3.7914, 24.105, 2.87, "B"},
	{"Tarazed", 19.7710, 10.613, 2.72, "K"},
	{"Alshain", 19.9219, 6.407, 3.71, "G"},
	{"Nihal", 5.4707, -20.759, 2.84, "G"},
	{"Wazn", 6.0266, -35.768, 3.85, "K"},
	{"Muscida", 8.5044, 60.718, 3.35, "G"},
	{"Talitha", 8.9868, 48.042, 3.14, "A"},
	{"Tania Australis", 10.3721, 41.499, 3.05, "M"},
	{"Alula Australis", 11.3030, 31.529, 3.78, "G"},
	{"Megrez", 12.2571, 57.033, 3.31, "A"},
	{"Alcor", 13.4204, 54.988, 3.99, "A"},
	{"Syrma", 14.2669, -6.001, 4.08, "F"},
	{"Khambalia", 14.5918, -13.371, 4.66, "A"},
	{"Kraz", 12.5731, -23.397, 2.65, "G"},
	{"Alkes", 10.9963, -18.299, 4.08, "K"},
	{"Minkar", 12.1687, -22.620, 3.02, "K"},
	{"Sceptrum", 4.1977, -8.898, 4.45, "K"},
	{"Cursa", 5.1309, -5.086, 2.79, "A"},
	{"Hassaleh", 5.0328, 33.166, 2.69, "K"},
	{"Hoedus I", 5.0413, 41.234, 3.04, "K"},
	{"Hoedus II", 5.0165, 41.076, 3.17, "B"},
	{"Saclateni", 5.2935, 40.010, 3.69, "B"},
	{"Furud", 6.3385, -30.063, 3.96, "B"},
	{"Muliphein", 7.0627, -15.633, 4.11, "B"},
	{"Tejat", 6.3827, 22.513, 2.88, "M"},
	{"Mebsuta", 6.7322, 25.131, 3.06, "G"},
	{"Propus", 6.2479, 22.506, 3.28, "M"},
	{"Wasat", 7.3354, 21.982, 3.53, "F"},
	{"Kappa Gem", 7.7408, 24.398, 3.57, "G"},
	{"Asellus Australis", 8.7447, 18.154, 3.94, "K"},
	{"Asellus Borealis", 8.7214, 21.469, 4.66, "A"},
	{"Acubens", 8.9748, 11.858, 4.25, "A"},
	{"Alterf", 9.3141, 22.968, 4.31, "K"},
	{"Rasalas", 9.7642, 26.007, 3.88, "K"},
	{"Adhafera", 10.2782, 23.417, 3.43, "F"},
	{"Subra", 9.8794, 9.893, 3.52, "K"},
	{"Chertan", 11.2373, 15.430, 3.33, "A"},
	{"Zavijava", 11.8449, 1.765, 3.61, "F"},
	{"Tyl", 19.2293, 67.661, 4.01, "K"},
	{"Edasich", 15.4155, 58.966, 3.29, "K"},
	{"Giausar", 11.7295, 69.331, 3.85, "M"},
	{"Grumium", 17.8921, 56.873, 3.75, "K"},
	{"Alsafi", 18.8347, 52.301, 4.67, "K"},
	{"Alrakis", 16.3999, 61.514, 4.67, "F"},
	{"Dziban", 18.0108, 72.149, 4.54, "F"},
	{"Pherkad", 15.3455, 71.834, 3.00, "A"},
	{"Yildun", 17.5369, 86.586, 4.36, "A"},
	{"Epsilon Dra", 19.8029, 70.268, 3.83, "G"},
	{"Chi Dra", 18.3311, 72.733, 3.57, "F"},
	{"Gianfar", 18.9382, 75.388, 4.13, "M"},
	{"Aldhibah", 17.0895, 65.715, 3.17, "B"},
	{"Nodus Secundus", 16.4665, 61.514, 3.07, "G"},
	{"Tania Borealis", 10.2849, 42.914, 3.45, "A"},
	{"Alula Borealis", 11.3080, 33.094, 3.49, "K"},
	{"Chara", 12.5624, 41.357, 4.26, "G"},
	{"Asterion", 12.9526, 38.318, 4.25, "G"},
	{"Diadem", 13.1665, 17.529, 4.32, "F"},
	{"Zaniah", 12.3317, -0.667, 3.89, "A"},
	{"Auva", 12.8570, 3.397, 3.38, "M"},
	{"Heze", 13.5782, -0.596, 3.37, "A"},
	{"Ruchbah", 1.4303, 60.235, 2.68, "A"},
	{"Segin", 1.9066, 63.670, 3.38, "B"},
	{"Fawaris", 19.7496, 45.131, 2.87, "B"},
	{"Sheliak", 18.8347, 33.363, 3.52, "B"},
	{"Sulafat", 18.9824, 32.690, 3.25, "B"},
	{"Muphrid", 13.9114, 18.398, 2.68, "G"},
	{"Seginus", 14.5346, 38.308, 3.03, "A"},
	{"Imai", 12.2524, -58.749, 2.79, "B"},
	{"Algenib", 0.2206, 15.183, 2.83, "B"},
	{"Almach", 2.0650, 42.330, 2.26, "K"},
	{"Alfirk", 21.4777, 70.561, 3.23, "B"},
	{"Errai", 23.6557, 77.632, 3.21, "K"},
	{"Nusakan", 15.4638, 29.106, 3.68, "F"},
	{"Menkar", 3.0380, 4.090, 2.53, "M"},
}

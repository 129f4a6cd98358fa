package theme

// DefaultName is the theme applied on first run and the fallback when
// the active theme disappears (e.g. a custom theme is deleted).
const DefaultName = "noir"

// CustomCategory is the category assigned to imported themes.
const CustomCategory = "Custom"

// builtins is the fixed catalog. Entries never change after load.
var builtins = []Entry{
	{
		Name: "noir", Display: "Noir", Category: "Dark",
		Colors: Colors{
			Background: "#222222", FHigh: "#ffffff", FMed: "#cccccc", FLow: "#999999", FInv: "#ffffff",
			BHigh: "#888888", BMed: "#666666", BLow: "#444444", BInv: "#000000",
		},
	},
	{
		Name: "apollo", Display: "Apollo", Category: "Dark",
		Colors: Colors{
			Background: "#29272b", FHigh: "#ffffff", FMed: "#e47464", FLow: "#66606b", FInv: "#000000",
			BHigh: "#000000", BMed: "#201e21", BLow: "#322e33", BInv: "#e47464",
		},
	},
	{
		Name: "gotham", Display: "Gotham", Category: "Dark",
		Colors: Colors{
			Background: "#0a0f14", FHigh: "#98d1ce", FMed: "#599cab", FLow: "#245361", FInv: "#091f2e",
			BHigh: "#093748", BMed: "#081f2d", BLow: "#10151b", BInv: "#8fa1b3",
		},
	},
	{
		Name: "nightowl", Display: "Night Owl", Category: "Dark",
		Colors: Colors{
			Background: "#011627", FHigh: "#7fdbca", FMed: "#82aaff", FLow: "#c792ea", FInv: "#637777",
			BHigh: "#5f7e97", BMed: "#456075", BLow: "#2f4759", BInv: "#addb67",
		},
	},
	{
		Name: "murata", Display: "Murata", Category: "Light",
		Colors: Colors{
			Background: "#111111", FHigh: "#ffffff", FMed: "#eeeeee", FLow: "#999999", FInv: "#000000",
			BHigh: "#ffb545", BMed: "#4f3f3e", BLow: "#2b2b2b", BInv: "#ffffff",
		},
	},
	{
		Name: "marble", Display: "Marble", Category: "Light",
		Colors: Colors{
			Background: "#fbfbf2", FHigh: "#3a3738", FMed: "#847577", FLow: "#bdb8b8", FInv: "#a6a2a2",
			BHigh: "#676164", BMed: "#a6a2a2", BLow: "#cfd2cd", BInv: "#676164",
		},
	},
	{
		Name: "solarised-light", Display: "Solarised Light", Category: "Light",
		Colors: Colors{
			Background: "#fdf6e3", FHigh: "#586e75", FMed: "#839496", FLow: "#93a1a1", FInv: "#eee8d5",
			BHigh: "#eee8d5", BMed: "#e4ddc8", BLow: "#f2eddb", BInv: "#cb4b16",
		},
	},
	{
		Name: "pico8", Display: "Pico-8", Category: "Specialty",
		Colors: Colors{
			Background: "#000000", FHigh: "#ffffff", FMed: "#fff1e8", FLow: "#ff78a9", FInv: "#ffffff",
			BHigh: "#c2c3c7", BMed: "#83769c", BLow: "#695f56", BInv: "#00aefe",
		},
	},
	{
		Name: "roguelight", Display: "Roguelight", Category: "Specialty",
		Colors: Colors{
			Background: "#352b31", FHigh: "#f5f5d4", FMed: "#9a8a7b", FLow: "#6a5d55", FInv: "#352b31",
			BHigh: "#f0e5cf", BMed: "#b0a18f", BLow: "#43373c", BInv: "#bbd999",
		},
	},
	{
		Name: "battlestation", Display: "Battlestation", Category: "Specialty",
		Colors: Colors{
			Background: "#222324", FHigh: "#ffffff", FMed: "#e5c890", FLow: "#9a9b9c", FInv: "#000000",
			BHigh: "#555555", BMed: "#333333", BLow: "#2a2b2c", BInv: "#e5c890",
		},
	},
}

// Builtins returns a copy of the built-in catalog.
func Builtins() []Entry {
	out := make([]Entry, len(builtins))
	copy(out, builtins)
	return out
}

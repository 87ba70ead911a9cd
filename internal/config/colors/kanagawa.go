package colors

// kanagawa palette, shared by the wave, dragon and lotus presets
var palette = struct {
	sumiInk3, sumiInk4, sumiInk6                  string
	waveBlue1, winterBlue, winterRed              string
	fujiWhite, fujiGray                           string
	oniViolet, crystalBlue, springGreen, peachRed string
	samuraiRed, dragonBlue, waveAqua2             string

	dragonBlack3, dragonBlack4, dragonBlack6 string
	dragonWhite, dragonAsh                   string
	dragonGreen2, dragonBlue2, dragonViolet  string
	dragonRed, dragonAqua                    string

	lotusInk1, lotusGray3                   string
	lotusWhite3, lotusWhite4                string
	lotusViolet1, lotusViolet4              string
	lotusBlue1, lotusBlue2, lotusBlue4      string
	lotusGreen, lotusRed, lotusRed3         string
	lotusRed4, lotusAqua, lotusTeal3        string
}{
	sumiInk3: "#1F1F28", sumiInk4: "#2A2A37", sumiInk6: "#54546D",
	waveBlue1: "#223249", winterBlue: "#252535", winterRed: "#43242B",
	fujiWhite: "#DCD7BA", fujiGray: "#727169",
	oniViolet: "#957FB8", crystalBlue: "#7E9CD8", springGreen: "#98BB6C", peachRed: "#FF5D62",
	samuraiRed: "#E82424", dragonBlue: "#658594", waveAqua2: "#7AA89F",

	dragonBlack3: "#181616", dragonBlack4: "#282727", dragonBlack6: "#625E5A",
	dragonWhite: "#C5C9C5", dragonAsh: "#737C73",
	dragonGreen2: "#8A9A7B", dragonBlue2: "#8BA4B0", dragonViolet: "#8992A7",
	dragonRed: "#C4746E", dragonAqua: "#8EA4A2",

	lotusInk1: "#545464", lotusGray3: "#8A8980",
	lotusWhite3: "#F2ECBC", lotusWhite4: "#E7DBA0",
	lotusViolet1: "#A09CAC", lotusViolet4: "#624C83",
	lotusBlue1: "#C7D7E0", lotusBlue2: "#B5CBD2", lotusBlue4: "#4D699B",
	lotusGreen: "#6F894E", lotusRed: "#C84053", lotusRed3: "#E82424",
	lotusRed4: "#D9A594", lotusAqua: "#597B75", lotusTeal3: "#5A7785",
}

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: palette.oniViolet,

		Create: palette.springGreen,
		Delete: palette.peachRed,

		ColumnBorder:   palette.sumiInk6,
		CardBorder:     palette.sumiInk4,
		CardBackground: palette.sumiInk3,
		SelectedBorder: palette.waveAqua2,
		SelectedBg:     palette.waveBlue1,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		InfoFg:  palette.dragonBlue,
		InfoBg:  palette.winterBlue,
		ErrorFg: palette.samuraiRed,
		ErrorBg: palette.winterRed,

		StatusBarBg:   palette.oniViolet,
		StatusBarText: palette.fujiWhite,
	}
}

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: palette.dragonViolet,

		Create: palette.dragonGreen2,
		Delete: palette.dragonRed,

		ColumnBorder:   palette.dragonBlack6,
		CardBorder:     palette.dragonBlack4,
		CardBackground: palette.dragonBlack3,
		SelectedBorder: palette.dragonAqua,
		SelectedBg:     palette.waveBlue1,

		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		InfoFg:  palette.dragonBlue,
		InfoBg:  palette.winterBlue,
		ErrorFg: palette.samuraiRed,
		ErrorBg: palette.winterRed,

		StatusBarBg:   palette.dragonViolet,
		StatusBarText: palette.dragonWhite,
	}
}

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: palette.lotusViolet4,

		Create: palette.lotusGreen,
		Delete: palette.lotusRed,

		ColumnBorder:   palette.lotusViolet1,
		CardBorder:     palette.lotusWhite4,
		CardBackground: palette.lotusWhite3,
		SelectedBorder: palette.lotusAqua,
		SelectedBg:     palette.lotusBlue1,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		InfoFg:  palette.lotusTeal3,
		InfoBg:  palette.lotusBlue2,
		ErrorFg: palette.lotusRed3,
		ErrorBg: palette.lotusRed4,

		StatusBarBg:   palette.lotusViolet4,
		StatusBarText: palette.lotusWhite3,
	}
}

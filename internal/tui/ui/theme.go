package ui

import "github.com/gdamore/tcell/v2"

// Theme holds the palette shared by every widget. Widgets keep a pointer to
// one Theme value; switching palettes overwrites it in place and asks each
// widget to re-apply its colors.
type Theme struct {
	Name              string
	BgColor           tcell.Color
	FgColor           tcell.Color
	MutedColor        tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	TableHeaderFg     tcell.Color
	TableHeaderBg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	CrumbActiveFg     tcell.Color
	CrumbActiveBg     tcell.Color
	CrumbInactiveFg   tcell.Color
	CrumbInactiveBg   tcell.Color
	MenuKeyColor      tcell.Color
	NumericKeyColor   tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	LikeColor         tcell.Color
	OnlineColor       tcell.Color
	OutboundColor     tcell.Color
	InboundColor      tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
}

// DarkTheme returns the k9s-inspired dark palette.
func DarkTheme() *Theme {
	return &Theme{
		Name:              "dark",
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorCadetBlue,
		MutedColor:        tcell.ColorGray,
		BorderColor:       tcell.ColorDodgerBlue,
		BorderFocusColor:  tcell.ColorLightSkyBlue,
		TableHeaderFg:     tcell.ColorWhite,
		TableHeaderBg:     tcell.ColorBlack,
		TableCursorFg:     tcell.ColorBlack,
		TableCursorBg:     tcell.ColorAqua,
		CrumbActiveFg:     tcell.ColorBlack,
		CrumbActiveBg:     tcell.ColorOrange,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorAqua,
		MenuKeyColor:      tcell.ColorDodgerBlue,
		NumericKeyColor:   tcell.ColorFuchsia,
		TitleColor:        tcell.ColorFuchsia,
		CounterColor:      tcell.ColorPapayaWhip,
		LikeColor:         tcell.ColorRed,
		OnlineColor:       tcell.ColorLime,
		OutboundColor:     tcell.ColorLightGreen,
		InboundColor:      tcell.ColorLightSkyBlue,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorDodgerBlue,
	}
}

// LightTheme returns the light palette.
func LightTheme() *Theme {
	return &Theme{
		Name:              "light",
		BgColor:           tcell.ColorWhite,
		FgColor:           tcell.ColorDarkSlateGray,
		MutedColor:        tcell.ColorDimGray,
		BorderColor:       tcell.ColorSteelBlue,
		BorderFocusColor:  tcell.ColorNavy,
		TableHeaderFg:     tcell.ColorBlack,
		TableHeaderBg:     tcell.ColorWhite,
		TableCursorFg:     tcell.ColorWhite,
		TableCursorBg:     tcell.ColorRoyalBlue,
		CrumbActiveFg:     tcell.ColorWhite,
		CrumbActiveBg:     tcell.ColorDarkOrange,
		CrumbInactiveFg:   tcell.ColorWhite,
		CrumbInactiveBg:   tcell.ColorSteelBlue,
		MenuKeyColor:      tcell.ColorRoyalBlue,
		NumericKeyColor:   tcell.ColorDarkMagenta,
		TitleColor:        tcell.ColorDarkMagenta,
		CounterColor:      tcell.ColorSaddleBrown,
		LikeColor:         tcell.ColorCrimson,
		OnlineColor:       tcell.ColorGreen,
		OutboundColor:     tcell.ColorDarkGreen,
		InboundColor:      tcell.ColorNavy,
		FlashInfoColor:    tcell.ColorDarkSlateBlue,
		FlashWarnColor:    tcell.ColorDarkOrange,
		FlashErrColor:     tcell.ColorFireBrick,
		PromptBorderColor: tcell.ColorRoyalBlue,
	}
}

// ThemeFor returns the palette for a stored theme name. Unknown names get
// the light palette, the same default the daemon uses.
func ThemeFor(name string) *Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}

// Tag returns the tview color tag name for c.
func Tag(c tcell.Color) string {
	return colorName(c)
}

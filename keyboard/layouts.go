package keyboard

// Builtin layout templates. Alphabet rows leave ShiftLabel empty; the
// materializer fills it in with the locale's uppercase form.

func charRow(chars string) []Definition {
	row := make([]Definition, 0, len(chars))
	for _, r := range chars {
		row = append(row, Definition{Code: int(r), Label: string(r)})
	}
	return row
}

var bottomRow = []Definition{
	{Code: CodeModeChange, Label: "?123"},
	{Code: CodeSpace, Label: "space"},
	{Code: CodeEnter, Label: "enter"},
}

func init() {
	register(LayoutQwerty, [][]Definition{
		charRow("qwertyuiop"),
		charRow("asdfghjkl"),
		append([]Definition{{Code: CodeShift, Label: "shift"}}, append(charRow("zxcvbnm"), Definition{Code: CodeDelete, Label: "del"})...),
		bottomRow,
	})

	register(LayoutSymbols, [][]Definition{
		charRow("1234567890"),
		charRow("@#$%&*-+()"),
		append([]Definition{{Code: CodeShift, Label: "alt"}}, append(charRow("!\"':;/?"), Definition{Code: CodeDelete, Label: "del"})...),
		bottomRow,
	})

	register(LayoutSymbolsShifted, [][]Definition{
		charRow("~`|•√π÷×¶∆"),
		charRow("£¢€¥^°={}"),
		append([]Definition{{Code: CodeShift, Label: "alt"}}, append(charRow("%©®™✓[]"), Definition{Code: CodeDelete, Label: "del"})...),
		bottomRow,
	})

	register(LayoutPhone, [][]Definition{
		charRow("123"),
		charRow("456"),
		charRow("789"),
		{
			{Code: CodeModeChange, Label: "*#"},
			{Code: int('0'), Label: "0"},
			{Code: CodeDelete, Label: "del"},
		},
	})

	register(LayoutPhoneSymbols, [][]Definition{
		charRow("(/)"),
		charRow("N,."),
		{
			{Code: int('*'), Label: "*"},
			{Code: int('#'), Label: "#"},
			{Code: int('+'), Label: "+"},
		},
		{
			{Code: CodeModeChange, Label: "123"},
			{Code: CodeSpace, Label: "space"},
			{Code: CodeDelete, Label: "del"},
		},
	})

	// The number layout deliberately has no alpha/symbol switch key.
	register(LayoutNumber, [][]Definition{
		charRow("123"),
		charRow("456"),
		charRow("789"),
		{
			{Code: int('-'), Label: "-"},
			{Code: int('0'), Label: "0"},
			{Code: CodeDelete, Label: "del"},
		},
	})
}

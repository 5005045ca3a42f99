package table

// BeltStyle is the badge styling for a belt, as CSS utility classes.
type BeltStyle string

// FallbackBeltStyle is used for belts missing from the style table.
const FallbackBeltStyle BeltStyle = "bg-muted text-muted-foreground"

var beltStyles = map[string]BeltStyle{
	"Branca":   "bg-gray-100 text-gray-800 border-gray-300",
	"Amarela":  "bg-yellow-100 text-yellow-800 border-yellow-400",
	"Verde":    "bg-green-100 text-green-800 border-green-500",
	"Azul":     "bg-blue-100 text-blue-800 border-blue-500",
	"Vermelha": "bg-red-100 text-red-800 border-red-500",
	"Preta":    "bg-gray-900 text-white border-gray-900",
}

// StyleForBelt looks up the badge style for belt.
func StyleForBelt(belt string) BeltStyle {
	if style, ok := beltStyles[belt]; ok {
		return style
	}
	return FallbackBeltStyle
}

// BloodTypeStyle is the fixed style of the blood type tag.
const BloodTypeStyle = "bg-red-50 text-red-700 border-red-200"
